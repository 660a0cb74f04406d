// Package service chứa logic nghiệp vụ của domain banner
package service

import (
	baseservice "shop_commerce/internal/api/base/service"
	"shop_commerce/internal/api/banner/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// BannerService xử lý nghiệp vụ banner
type BannerService struct {
	*baseservice.BaseServiceMongoImpl[models.Banner]
}

// NewBannerService tạo mới BannerService
func NewBannerService() (*BannerService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Banners)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection banner chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &BannerService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.Banner](collection),
	}, nil
}
