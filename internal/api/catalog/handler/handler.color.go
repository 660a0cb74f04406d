package handler

import (
	"go.mongodb.org/mongo-driver/bson"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/catalog/dto"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/api/catalog/service"
)

// ColorHandler xử lý các request liên quan đến màu sắc
type ColorHandler struct {
	basehandler.BaseHandler[models.Color, dto.ColorCreateInput, dto.ColorUpdateInput]
}

// NewColorHandler tạo mới ColorHandler
func NewColorHandler() (*ColorHandler, error) {
	colorService, err := service.NewColorService()
	if err != nil {
		return nil, err
	}

	h := &ColorHandler{}
	h.Service = colorService
	h.FilterFields = []basehandler.FilterField{
		{QueryParam: "name", BsonField: "name", Contains: true},
	}
	h.DefaultSort = bson.D{{Key: "name", Value: 1}}
	return h, nil
}
