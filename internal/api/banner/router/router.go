// Package router đăng ký các route của domain banner
package router

import (
	"github.com/gofiber/fiber/v3"

	"shop_commerce/internal/api/banner/handler"
	"shop_commerce/internal/api/router"
)

// Register đăng ký toàn bộ route của domain banner
func Register(api fiber.Router, r *router.Router) error {
	bannerHandler, err := handler.NewBannerHandler()
	if err != nil {
		return err
	}

	r.RegisterResourceRoutes(api, "/banner", bannerHandler, router.PublicReadAdminWriteConfig)
	return nil
}
