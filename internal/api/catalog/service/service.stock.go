package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "shop_commerce/internal/api/base/models"
	baseservice "shop_commerce/internal/api/base/service"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// StockService xử lý nghiệp vụ tồn kho
type StockService struct {
	*baseservice.BaseServiceMongoImpl[models.Stock]
}

// NewStockService tạo mới StockService
func NewStockService() (*StockService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Stocks)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection tồn kho chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &StockService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.Stock](collection),
	}, nil
}

// InsertOne tạo bản ghi tồn kho, mỗi phiên bản chỉ có một bản ghi cho mỗi màu
func (s *StockService) InsertOne(ctx context.Context, data models.Stock) (models.Stock, error) {
	exists, err := s.DocumentExists(ctx, bson.M{
		"productItemId": data.ProductItemID,
		"colorName":     data.ColorName,
	})
	if err != nil {
		return models.Stock{}, err
	}
	if exists {
		return models.Stock{}, common.NewError(common.ErrCodeDatabaseDuplicate,
			"Tồn kho cho màu này của phiên bản đã tồn tại", common.StatusConflict, nil)
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById cập nhật tồn kho, kiểm tra lại khóa (productItemId, colorName)
// khi update đổi một trong hai field của khóa
func (s *StockService) UpdateById(ctx context.Context, id primitive.ObjectID, update basemodels.UpdateData) (models.Stock, error) {
	if _, hasItem := update.Set["productItemId"]; hasItem || update.Set["colorName"] != nil {
		current, err := s.FindOneById(ctx, id)
		if err != nil {
			return models.Stock{}, err
		}
		itemID, colorName, changed := effectiveCompoundKey(current.ProductItemID, current.ColorName, update.Set)
		if changed {
			exists, err := s.DocumentExists(ctx, bson.M{
				"productItemId": itemID,
				"colorName":     colorName,
				"_id":           bson.M{"$ne": id},
			})
			if err != nil {
				return models.Stock{}, err
			}
			if exists {
				return models.Stock{}, common.NewError(common.ErrCodeDatabaseDuplicate,
					"Tồn kho cho màu này của phiên bản đã tồn tại", common.StatusConflict, nil)
			}
		}
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// FindByProductItem trả về tồn kho theo màu của một phiên bản sản phẩm
func (s *StockService) FindByProductItem(ctx context.Context, productItemID primitive.ObjectID) ([]models.Stock, error) {
	return s.Find(ctx, bson.M{"productItemId": productItemID}, nil)
}
