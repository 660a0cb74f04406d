package handler

import (
	"go.mongodb.org/mongo-driver/bson"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/catalog/dto"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/api/catalog/service"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	basehandler.BaseHandler[models.Product, dto.ProductCreateInput, dto.ProductUpdateInput]
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := service.NewProductService()
	if err != nil {
		return nil, err
	}

	h := &ProductHandler{}
	h.Service = productService
	h.FilterFields = []basehandler.FilterField{
		{QueryParam: "name", BsonField: "name", Contains: true},
		{QueryParam: "categoryId", BsonField: "categoryId", IsObjectID: true},
	}
	h.DefaultSort = bson.D{{Key: "name", Value: 1}}
	return h, nil
}
