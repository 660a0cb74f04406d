// Package handler chứa các HTTP handler của domain order
package handler

import (
	"go.mongodb.org/mongo-driver/bson"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/order/dto"
	"shop_commerce/internal/api/order/models"
	"shop_commerce/internal/api/order/service"
)

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	basehandler.BaseHandler[models.Order, dto.OrderCreateInput, dto.OrderUpdateInput]
}

// NewOrderHandler tạo mới OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := service.NewOrderService()
	if err != nil {
		return nil, err
	}

	h := &OrderHandler{}
	h.Service = orderService
	h.FilterFields = []basehandler.FilterField{
		{QueryParam: "customerName", BsonField: "customerName", Contains: true},
		{QueryParam: "phone", BsonField: "phone"},
		{QueryParam: "status", BsonField: "status"},
	}
	h.DefaultSort = bson.D{{Key: "createdAt", Value: -1}}
	return h, nil
}
