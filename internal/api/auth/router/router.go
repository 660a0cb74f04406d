// Package router đăng ký các route của domain auth
package router

import (
	"github.com/gofiber/fiber/v3"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/auth/handler"
	"shop_commerce/internal/api/middleware"
	"shop_commerce/internal/api/router"
)

// Register đăng ký toàn bộ route của domain auth
func Register(api fiber.Router, r *router.Router) error {
	authHandler, err := handler.NewAuthHandler()
	if err != nil {
		return err
	}

	router.RegisterRouteWithMiddleware(api, "/auth", "POST", "/register", nil, basehandler.SafeHandler(authHandler.Register))
	router.RegisterRouteWithMiddleware(api, "/auth", "POST", "/login", nil, basehandler.SafeHandler(authHandler.Login))
	router.RegisterRouteWithMiddleware(api, "/auth", "GET", "/profile",
		[]fiber.Handler{middleware.AuthRequired}, basehandler.SafeHandler(authHandler.Profile))

	return nil
}
