package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/catalog/dto"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/api/catalog/service"
	"shop_commerce/internal/common"
)

// ProductItemHandler xử lý các request liên quan đến phiên bản sản phẩm
type ProductItemHandler struct {
	basehandler.BaseHandler[models.ProductItem, dto.ProductItemCreateInput, dto.ProductItemUpdateInput]
	productItemService *service.ProductItemService
}

// NewProductItemHandler tạo mới ProductItemHandler
func NewProductItemHandler() (*ProductItemHandler, error) {
	productItemService, err := service.NewProductItemService()
	if err != nil {
		return nil, err
	}

	h := &ProductItemHandler{productItemService: productItemService}
	h.Service = productItemService
	h.FilterFields = []basehandler.FilterField{
		{QueryParam: "name", BsonField: "name", Contains: true},
		{QueryParam: "slug", BsonField: "slug"},
		{QueryParam: "productId", BsonField: "productId", IsObjectID: true},
	}
	h.DefaultSort = bson.D{{Key: "name", Value: 1}}
	return h, nil
}

// BySlug trả về phiên bản sản phẩm theo slug, dùng cho trang chi tiết công khai
func (h *ProductItemHandler) BySlug(c fiber.Ctx) error {
	slug := c.Query("slug")
	if slug == "" {
		return basehandler.HandleError(c, common.NewError(common.ErrCodeValidationInput,
			"Thiếu tham số slug", common.StatusBadRequest, nil))
	}

	item, err := h.productItemService.FindBySlug(c.Context(), slug)
	return basehandler.HandleResponse(c, item, err)
}
