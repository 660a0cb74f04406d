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

// ColorService xử lý nghiệp vụ màu sắc
type ColorService struct {
	*baseservice.BaseServiceMongoImpl[models.Color]
}

// NewColorService tạo mới ColorService
func NewColorService() (*ColorService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Colors)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection màu sắc chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &ColorService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.Color](collection),
	}, nil
}

// checkDuplicate kiểm tra trùng tên màu (trừ excludeID)
func (s *ColorService) checkDuplicate(ctx context.Context, name string, excludeID primitive.ObjectID) error {
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
		return common.NewError(common.ErrCodeDatabaseDuplicate, "Màu sắc với tên này đã tồn tại", common.StatusConflict, nil)
	}
	return nil
}

// InsertOne tạo màu mới, kiểm tra trùng tên trước khi chèn
func (s *ColorService) InsertOne(ctx context.Context, data models.Color) (models.Color, error) {
	if err := s.checkDuplicate(ctx, data.Name, primitive.NilObjectID); err != nil {
		return models.Color{}, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById cập nhật màu, kiểm tra trùng tên (trừ chính nó)
func (s *ColorService) UpdateById(ctx context.Context, id primitive.ObjectID, update basemodels.UpdateData) (models.Color, error) {
	name, _ := update.Set["name"].(string)
	if err := s.checkDuplicate(ctx, name, id); err != nil {
		return models.Color{}, err
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// DeleteById xóa màu, chặn khi còn bộ ảnh hoặc tồn kho dùng màu này.
// ProductColor và Stock tham chiếu màu theo tên nên phải đọc màu trước.
func (s *ColorService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	color, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	checks := []baseservice.RelationshipCheck{
		{
			CollectionName: global.MongoDB_ColNames.ProductColors,
			FieldName:      "colorName",
			ErrorMessage:   "Không thể xóa màu vì còn %d bộ ảnh sản phẩm đang sử dụng",
		},
		{
			CollectionName: global.MongoDB_ColNames.Stocks,
			FieldName:      "colorName",
			ErrorMessage:   "Không thể xóa màu vì còn %d bản ghi tồn kho đang sử dụng",
		},
	}
	if err := baseservice.CheckRelationshipExists(ctx, checks, color.Name); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
