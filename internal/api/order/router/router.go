// Package router đăng ký các route của domain order
package router

import (
	"github.com/gofiber/fiber/v3"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/order/handler"
	"shop_commerce/internal/api/router"
)

// Register đăng ký toàn bộ route của domain order.
// Route by-order phải đăng ký trước CRUD để không bị route /:id nuốt mất.
func Register(api fiber.Router, r *router.Router) error {
	orderHandler, err := handler.NewOrderHandler()
	if err != nil {
		return err
	}
	orderItemHandler, err := handler.NewOrderItemHandler()
	if err != nil {
		return err
	}

	// Khách đặt hàng không cần đăng nhập; xem và quản lý đơn là việc của
	// admin vì đơn chứa tên, SĐT, địa chỉ khách hàng
	r.RegisterResourceRoutes(api, "/order", orderHandler, router.CheckoutConfig)

	// Prefix đầy đủ để middleware admin không dính sang POST /order-item
	router.RegisterRouteWithMiddleware(api, "/order-item/by-order", "GET", "/:orderId", router.AdminMiddlewares(), basehandler.SafeHandler(orderItemHandler.ByOrder))
	r.RegisterResourceRoutes(api, "/order-item", orderItemHandler, router.CheckoutConfig)

	return nil
}
