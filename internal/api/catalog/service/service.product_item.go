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

// ProductItemService xử lý nghiệp vụ phiên bản sản phẩm
type ProductItemService struct {
	*baseservice.BaseServiceMongoImpl[models.ProductItem]
}

// NewProductItemService tạo mới ProductItemService
func NewProductItemService() (*ProductItemService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.ProductItems)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection phiên bản sản phẩm chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &ProductItemService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.ProductItem](collection),
	}, nil
}

// checkDuplicate kiểm tra trùng slug (trừ excludeID)
func (s *ProductItemService) checkDuplicate(ctx context.Context, slug string, excludeID primitive.ObjectID) error {
	if slug == "" {
		return nil
	}
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	exists, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if exists {
		return common.NewError(common.ErrCodeDatabaseDuplicate, "Phiên bản sản phẩm với slug này đã tồn tại", common.StatusConflict, nil)
	}
	return nil
}

// InsertOne tạo phiên bản mới, kiểm tra trùng slug trước khi chèn
func (s *ProductItemService) InsertOne(ctx context.Context, data models.ProductItem) (models.ProductItem, error) {
	if err := s.checkDuplicate(ctx, data.Slug, primitive.NilObjectID); err != nil {
		return models.ProductItem{}, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById cập nhật phiên bản, kiểm tra trùng slug (trừ chính nó)
func (s *ProductItemService) UpdateById(ctx context.Context, id primitive.ObjectID, update basemodels.UpdateData) (models.ProductItem, error) {
	slug, _ := update.Set["slug"].(string)
	if err := s.checkDuplicate(ctx, slug, id); err != nil {
		return models.ProductItem{}, err
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// FindBySlug tìm phiên bản sản phẩm theo slug
func (s *ProductItemService) FindBySlug(ctx context.Context, slug string) (models.ProductItem, error) {
	return s.FindOne(ctx, bson.M{"slug": slug}, nil)
}

// DeleteById xóa phiên bản, chặn khi còn dữ liệu tham chiếu
func (s *ProductItemService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	checks := []baseservice.RelationshipCheck{
		{
			CollectionName: global.MongoDB_ColNames.ProductColors,
			FieldName:      "productItemId",
			ErrorMessage:   "Không thể xóa phiên bản vì còn %d bộ ảnh theo màu tham chiếu",
		},
		{
			CollectionName: global.MongoDB_ColNames.Stocks,
			FieldName:      "productItemId",
			ErrorMessage:   "Không thể xóa phiên bản vì còn %d bản ghi tồn kho tham chiếu",
		},
		{
			CollectionName: global.MongoDB_ColNames.OrderItems,
			FieldName:      "productItemId",
			ErrorMessage:   "Không thể xóa phiên bản vì còn %d dòng đơn hàng tham chiếu",
		},
	}
	if err := baseservice.CheckRelationshipExists(ctx, checks, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
