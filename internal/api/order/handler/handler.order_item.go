package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/order/dto"
	"shop_commerce/internal/api/order/models"
	"shop_commerce/internal/api/order/service"
)

// OrderItemHandler xử lý các request liên quan đến dòng hàng trong đơn
type OrderItemHandler struct {
	basehandler.BaseHandler[models.OrderItem, dto.OrderItemCreateInput, dto.OrderItemUpdateInput]
	orderItemService *service.OrderItemService
}

// NewOrderItemHandler tạo mới OrderItemHandler
func NewOrderItemHandler() (*OrderItemHandler, error) {
	orderItemService, err := service.NewOrderItemService()
	if err != nil {
		return nil, err
	}

	h := &OrderItemHandler{orderItemService: orderItemService}
	h.Service = orderItemService
	h.FilterFields = []basehandler.FilterField{
		{QueryParam: "orderId", BsonField: "orderId", IsObjectID: true},
		{QueryParam: "productItemId", BsonField: "productItemId", IsObjectID: true},
	}
	h.DefaultSort = bson.D{{Key: "createdAt", Value: -1}}
	return h, nil
}

// ByOrder trả về tất cả dòng hàng của một đơn
func (h *OrderItemHandler) ByOrder(c fiber.Ctx) error {
	orderID, err := h.ParseObjectID(c, "orderId")
	if err != nil {
		return basehandler.HandleError(c, err)
	}

	items, err := h.orderItemService.FindByOrder(c.Context(), orderID)
	return basehandler.HandleResponse(c, items, err)
}
