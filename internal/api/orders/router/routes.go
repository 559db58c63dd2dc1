// Package router đăng ký các route thuộc domain orders.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"sales_ops/internal/api/middleware"
	ordershdl "sales_ops/internal/api/orders/handler"
	apirouter "sales_ops/internal/api/router"
)

// Register đăng ký tất cả route orders lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := ordershdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	// Các route nghiệp vụ phải đăng ký TRƯỚC CRUD: AdminDelete gắn middleware admin
	// qua .Use() trên prefix, route đăng ký sau nó sẽ bị chặn với role sales.
	authMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/:id/confirm-delivery", []fiber.Handler{authMiddleware}, orderHandler.HandleConfirmDelivery)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/:id/mark-pending", []fiber.Handler{authMiddleware}, orderHandler.HandleMarkPending)

	config := apirouter.ReadWriteConfig
	config.AdminDelete = true
	r.RegisterCRUDRoutes(v1, "/orders", orderHandler, config)
	return nil
}
