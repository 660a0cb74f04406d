package handler

import (
	"go.mongodb.org/mongo-driver/bson"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/catalog/dto"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/api/catalog/service"
)

// StockHandler xử lý các request liên quan đến tồn kho
type StockHandler struct {
	basehandler.BaseHandler[models.Stock, dto.StockCreateInput, dto.StockUpdateInput]
}

// NewStockHandler tạo mới StockHandler
func NewStockHandler() (*StockHandler, error) {
	stockService, err := service.NewStockService()
	if err != nil {
		return nil, err
	}

	h := &StockHandler{}
	h.Service = stockService
	h.FilterFields = []basehandler.FilterField{
		{QueryParam: "productItemId", BsonField: "productItemId", IsObjectID: true},
		{QueryParam: "colorName", BsonField: "colorName"},
	}
	h.DefaultSort = bson.D{{Key: "colorName", Value: 1}}
	return h, nil
}
