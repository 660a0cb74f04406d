// Package handler chứa các HTTP handler của domain banner
package handler

import (
	"go.mongodb.org/mongo-driver/bson"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/banner/dto"
	"shop_commerce/internal/api/banner/models"
	"shop_commerce/internal/api/banner/service"
)

// BannerHandler xử lý các request liên quan đến banner
type BannerHandler struct {
	basehandler.BaseHandler[models.Banner, dto.BannerCreateInput, dto.BannerUpdateInput]
}

// NewBannerHandler tạo mới BannerHandler
func NewBannerHandler() (*BannerHandler, error) {
	bannerService, err := service.NewBannerService()
	if err != nil {
		return nil, err
	}

	h := &BannerHandler{}
	h.Service = bannerService
	h.FilterFields = []basehandler.FilterField{
		{QueryParam: "title", BsonField: "title", Contains: true},
	}
	h.DefaultSort = bson.D{{Key: "position", Value: 1}, {Key: "createdAt", Value: -1}}
	return h, nil
}
