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

// effectiveCompoundKey trả về cặp (productItemId, colorName) sau khi áp
// các field trong update lên giá trị hiện tại. changed = false khi update
// không đụng tới field nào của khóa.
func effectiveCompoundKey(currentItemID primitive.ObjectID, currentColor string, set map[string]interface{}) (primitive.ObjectID, string, bool) {
	itemID := currentItemID
	colorName := currentColor
	changed := false
	if v, ok := set["productItemId"].(primitive.ObjectID); ok {
		itemID = v
		changed = true
	}
	if v, ok := set["colorName"].(string); ok {
		colorName = v
		changed = true
	}
	return itemID, colorName, changed
}

// ProductColorService xử lý nghiệp vụ bộ ảnh sản phẩm theo màu
type ProductColorService struct {
	*baseservice.BaseServiceMongoImpl[models.ProductColor]
}

// NewProductColorService tạo mới ProductColorService
func NewProductColorService() (*ProductColorService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.ProductColors)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection bộ ảnh theo màu chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &ProductColorService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.ProductColor](collection),
	}, nil
}

// InsertOne tạo bộ ảnh mới, mỗi phiên bản chỉ có một bộ ảnh cho mỗi màu
func (s *ProductColorService) InsertOne(ctx context.Context, data models.ProductColor) (models.ProductColor, error) {
	exists, err := s.DocumentExists(ctx, bson.M{
		"productItemId": data.ProductItemID,
		"colorName":     data.ColorName,
	})
	if err != nil {
		return models.ProductColor{}, err
	}
	if exists {
		return models.ProductColor{}, common.NewError(common.ErrCodeDatabaseDuplicate,
			"Bộ ảnh cho màu này của phiên bản đã tồn tại", common.StatusConflict, nil)
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById cập nhật bộ ảnh, kiểm tra lại khóa (productItemId, colorName)
// khi update đổi một trong hai field của khóa
func (s *ProductColorService) UpdateById(ctx context.Context, id primitive.ObjectID, update basemodels.UpdateData) (models.ProductColor, error) {
	if _, hasItem := update.Set["productItemId"]; hasItem || update.Set["colorName"] != nil {
		current, err := s.FindOneById(ctx, id)
		if err != nil {
			return models.ProductColor{}, err
		}
		itemID, colorName, changed := effectiveCompoundKey(current.ProductItemID, current.ColorName, update.Set)
		if changed {
			exists, err := s.DocumentExists(ctx, bson.M{
				"productItemId": itemID,
				"colorName":     colorName,
				"_id":           bson.M{"$ne": id},
			})
			if err != nil {
				return models.ProductColor{}, err
			}
			if exists {
				return models.ProductColor{}, common.NewError(common.ErrCodeDatabaseDuplicate,
					"Bộ ảnh cho màu này của phiên bản đã tồn tại", common.StatusConflict, nil)
			}
		}
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// FindByProductItem trả về các bộ ảnh theo màu của một phiên bản sản phẩm
func (s *ProductColorService) FindByProductItem(ctx context.Context, productItemID primitive.ObjectID) ([]models.ProductColor, error) {
	return s.Find(ctx, bson.M{"productItemId": productItemID}, nil)
}
