// Package handler chứa các HTTP handler của domain cart
package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/cart/dto"
	"shop_commerce/internal/api/cart/service"
	"shop_commerce/internal/api/middleware"
	"shop_commerce/internal/common"
	"shop_commerce/internal/utility"
)

// CartHandler xử lý các request liên quan đến giỏ hàng.
// Mọi route đều yêu cầu đăng nhập, giỏ được xác định theo user trong token.
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler tạo mới CartHandler
func NewCartHandler() (*CartHandler, error) {
	cartService, err := service.NewCartService()
	if err != nil {
		return nil, err
	}
	return &CartHandler{cartService: cartService}, nil
}

// currentUserID lấy ID người dùng từ Locals do AuthRequired đặt vào
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID, _ := c.Locals(middleware.LocalUserID).(string)
	objectID := utility.String2ObjectID(userID)
	if objectID.IsZero() {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return objectID, nil
}

// Get trả về giỏ hàng của người dùng đang đăng nhập
func (h *CartHandler) Get(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return basehandler.HandleError(c, err)
	}

	cart, err := h.cartService.GetOrCreateByUser(c.Context(), userID)
	return basehandler.HandleResponse(c, cart, err)
}

// AddItems thêm các dòng hàng vào giỏ, gộp theo khóa (itemId, colorName)
func (h *CartHandler) AddItems(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return basehandler.HandleError(c, err)
	}

	var input dto.CartAddInput
	if err := c.Bind().Body(&input); err != nil {
		return basehandler.HandleError(c, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
	}
	if err := basehandler.ValidateStruct(&input); err != nil {
		return basehandler.HandleError(c, err)
	}

	cart, err := h.cartService.AddItems(c.Context(), userID, input.ToModels())
	return basehandler.HandleResponse(c, cart, err)
}

// RemoveItem xóa một dòng hàng khỏi giỏ theo query params itemId và colorName
func (h *CartHandler) RemoveItem(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return basehandler.HandleError(c, err)
	}

	itemID := utility.String2ObjectID(c.Query("itemId"))
	colorName := c.Query("colorName")
	if itemID.IsZero() || colorName == "" {
		return basehandler.HandleError(c, common.NewError(common.ErrCodeValidationInput,
			"Thiếu tham số itemId hoặc colorName", common.StatusBadRequest, nil))
	}

	cart, err := h.cartService.RemoveItem(c.Context(), userID, itemID, colorName)
	return basehandler.HandleResponse(c, cart, err)
}

// Clear xóa toàn bộ giỏ hàng của người dùng
func (h *CartHandler) Clear(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return basehandler.HandleError(c, err)
	}

	cart, err := h.cartService.Clear(c.Context(), userID)
	return basehandler.HandleResponse(c, cart, err)
}
