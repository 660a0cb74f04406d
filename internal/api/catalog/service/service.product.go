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

// ProductService xử lý nghiệp vụ sản phẩm
type ProductService struct {
	*baseservice.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection sản phẩm chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &ProductService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.Product](collection),
	}, nil
}

// checkDuplicate kiểm tra trùng tên sản phẩm (trừ excludeID)
func (s *ProductService) checkDuplicate(ctx context.Context, name string, excludeID primitive.ObjectID) error {
	if name == "" {
		return nil
	}
	filter := bson.M{"name": name}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	exists, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if exists {
		return common.NewError(common.ErrCodeDatabaseDuplicate, "Sản phẩm với tên này đã tồn tại", common.StatusConflict, nil)
	}
	return nil
}

// InsertOne tạo sản phẩm mới, kiểm tra trùng tên trước khi chèn
func (s *ProductService) InsertOne(ctx context.Context, data models.Product) (models.Product, error) {
	if err := s.checkDuplicate(ctx, data.Name, primitive.NilObjectID); err != nil {
		return models.Product{}, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById cập nhật sản phẩm, kiểm tra trùng tên (trừ chính nó)
func (s *ProductService) UpdateById(ctx context.Context, id primitive.ObjectID, update basemodels.UpdateData) (models.Product, error) {
	name, _ := update.Set["name"].(string)
	if err := s.checkDuplicate(ctx, name, id); err != nil {
		return models.Product{}, err
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// DeleteById xóa sản phẩm, chặn khi còn phiên bản tham chiếu
func (s *ProductService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	checks := []baseservice.RelationshipCheck{
		{
			CollectionName: global.MongoDB_ColNames.ProductItems,
			FieldName:      "productId",
			ErrorMessage:   "Không thể xóa sản phẩm vì còn %d phiên bản thuộc sản phẩm này",
		},
	}
	if err := baseservice.CheckRelationshipExists(ctx, checks, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
