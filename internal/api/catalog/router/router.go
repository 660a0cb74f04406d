// Package router đăng ký các route của domain catalog
package router

import (
	"github.com/gofiber/fiber/v3"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/catalog/handler"
	"shop_commerce/internal/api/router"
)

// Register đăng ký toàn bộ route của domain catalog.
// Các route mở rộng (children, tree, slug) phải đăng ký TRƯỚC các route CRUD
// để không bị route /:id nuốt mất.
func Register(api fiber.Router, r *router.Router) error {
	categoryHandler, err := handler.NewCategoryHandler()
	if err != nil {
		return err
	}
	productHandler, err := handler.NewProductHandler()
	if err != nil {
		return err
	}
	productItemHandler, err := handler.NewProductItemHandler()
	if err != nil {
		return err
	}
	colorHandler, err := handler.NewColorHandler()
	if err != nil {
		return err
	}
	productColorHandler, err := handler.NewProductColorHandler()
	if err != nil {
		return err
	}
	stockHandler, err := handler.NewStockHandler()
	if err != nil {
		return err
	}

	// Category: các route mở rộng trước, CRUD sau
	router.RegisterRouteWithMiddleware(api, "/category", "GET", "/children", nil, basehandler.SafeHandler(categoryHandler.Children))
	router.RegisterRouteWithMiddleware(api, "/category", "GET", "/tree", nil, basehandler.SafeHandler(categoryHandler.Tree))
	r.RegisterResourceRoutes(api, "/category", categoryHandler, router.PublicReadAdminWriteConfig)

	// Product
	r.RegisterResourceRoutes(api, "/product", productHandler, router.PublicReadAdminWriteConfig)

	// ProductItem: route slug trước CRUD
	router.RegisterRouteWithMiddleware(api, "/product-item", "GET", "/slug", nil, basehandler.SafeHandler(productItemHandler.BySlug))
	r.RegisterResourceRoutes(api, "/product-item", productItemHandler, router.PublicReadAdminWriteConfig)

	// Color
	r.RegisterResourceRoutes(api, "/color", colorHandler, router.PublicReadAdminWriteConfig)

	// ProductColor
	r.RegisterResourceRoutes(api, "/product-color", productColorHandler, router.PublicReadAdminWriteConfig)

	// Stock
	r.RegisterResourceRoutes(api, "/stock", stockHandler, router.PublicReadAdminWriteConfig)

	return nil
}
