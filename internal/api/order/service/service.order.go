// Package service chứa logic nghiệp vụ của domain order
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	baseservice "shop_commerce/internal/api/base/service"
	"shop_commerce/internal/api/order/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// OrderService xử lý nghiệp vụ đơn hàng
type OrderService struct {
	*baseservice.BaseServiceMongoImpl[models.Order]
	items *baseservice.BaseServiceMongoImpl[models.OrderItem]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection đơn hàng chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	itemsCollection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.OrderItems)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection dòng hàng chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &OrderService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.Order](collection),
		items:                baseservice.NewBaseServiceMongo[models.OrderItem](itemsCollection),
	}, nil
}

// DeleteById xóa đơn hàng cùng toàn bộ dòng hàng của đơn.
// Dòng hàng chỉ thuộc về một đơn nên được xóa kèm thay vì chặn xóa.
func (s *OrderService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := s.BaseServiceMongoImpl.DeleteById(ctx, id); err != nil {
		return err
	}
	_, err := s.items.DeleteMany(ctx, bson.M{"orderId": id})
	return err
}
