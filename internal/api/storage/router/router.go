// Package router đăng ký các route của domain storage
package router

import (
	"github.com/gofiber/fiber/v3"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/middleware"
	"shop_commerce/internal/api/router"
	"shop_commerce/internal/api/storage/handler"
)

// Register đăng ký toàn bộ route của domain storage, chỉ admin được phép
func Register(api fiber.Router, r *router.Router) error {
	storageHandler, err := handler.NewStorageHandler()
	if err != nil {
		return err
	}

	adminOnly := []fiber.Handler{middleware.AuthRequired, middleware.AdminRequired}
	router.RegisterRouteWithMiddleware(api, "/image", "POST", "/upload", adminOnly, basehandler.SafeHandler(storageHandler.Upload))
	router.RegisterRouteWithMiddleware(api, "/image", "DELETE", "/delete", adminOnly, basehandler.SafeHandler(storageHandler.Delete))

	return nil
}
