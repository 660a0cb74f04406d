package handler

import (
	"go.mongodb.org/mongo-driver/bson"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/catalog/dto"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/api/catalog/service"
)

// ProductColorHandler xử lý các request liên quan đến bộ ảnh theo màu
type ProductColorHandler struct {
	basehandler.BaseHandler[models.ProductColor, dto.ProductColorCreateInput, dto.ProductColorUpdateInput]
}

// NewProductColorHandler tạo mới ProductColorHandler
func NewProductColorHandler() (*ProductColorHandler, error) {
	productColorService, err := service.NewProductColorService()
	if err != nil {
		return nil, err
	}

	h := &ProductColorHandler{}
	h.Service = productColorService
	h.FilterFields = []basehandler.FilterField{
		{QueryParam: "productItemId", BsonField: "productItemId", IsObjectID: true},
		{QueryParam: "colorName", BsonField: "colorName"},
	}
	h.DefaultSort = bson.D{{Key: "colorName", Value: 1}}
	return h, nil
}
