package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	baseservice "shop_commerce/internal/api/base/service"
	"shop_commerce/internal/api/order/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// OrderItemService xử lý nghiệp vụ dòng hàng trong đơn
type OrderItemService struct {
	*baseservice.BaseServiceMongoImpl[models.OrderItem]
}

// NewOrderItemService tạo mới OrderItemService
func NewOrderItemService() (*OrderItemService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.OrderItems)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection dòng đơn hàng chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &OrderItemService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.OrderItem](collection),
	}, nil
}

// FindByOrder trả về tất cả dòng hàng của một đơn, theo thứ tự tạo
func (s *OrderItemService) FindByOrder(ctx context.Context, orderID primitive.ObjectID) ([]models.OrderItem, error) {
	return s.Find(ctx, bson.M{"orderId": orderID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}
