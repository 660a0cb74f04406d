// Package router đăng ký các route của domain cart
package router

import (
	"github.com/gofiber/fiber/v3"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/cart/handler"
	"shop_commerce/internal/api/middleware"
	"shop_commerce/internal/api/router"
)

// Register đăng ký toàn bộ route của domain cart, tất cả yêu cầu đăng nhập
func Register(api fiber.Router, r *router.Router) error {
	cartHandler, err := handler.NewCartHandler()
	if err != nil {
		return err
	}

	auth := []fiber.Handler{middleware.AuthRequired}
	router.RegisterRouteWithMiddleware(api, "/cart", "GET", "/", auth, basehandler.SafeHandler(cartHandler.Get))
	router.RegisterRouteWithMiddleware(api, "/cart", "POST", "/items", auth, basehandler.SafeHandler(cartHandler.AddItems))
	router.RegisterRouteWithMiddleware(api, "/cart", "DELETE", "/items", auth, basehandler.SafeHandler(cartHandler.RemoveItem))
	router.RegisterRouteWithMiddleware(api, "/cart", "DELETE", "/", auth, basehandler.SafeHandler(cartHandler.Clear))

	return nil
}
