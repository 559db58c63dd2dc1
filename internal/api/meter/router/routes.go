// Package router đăng ký các route thuộc domain meter.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	meterhdl "sales_ops/internal/api/meter/handler"
	"sales_ops/internal/api/middleware"
	apirouter "sales_ops/internal/api/router"
)

// Register đăng ký tất cả route meter lên v1.
// Chuyến đi chỉ mở/đóng qua start và end, không qua CRUD ghi; xóa chỉ dành cho admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	meterHandler, err := meterhdl.NewMeterHandler()
	if err != nil {
		return fmt.Errorf("failed to create meter handler: %w", err)
	}

	// Start/end phải đăng ký TRƯỚC CRUD: AdminDelete gắn middleware admin
	// qua .Use() trên prefix, route đăng ký sau nó sẽ bị chặn với role sales.
	authMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/meter-readings", "POST", "/start", []fiber.Handler{authMiddleware}, meterHandler.HandleStartJourney)
	apirouter.RegisterRouteWithMiddleware(v1, "/meter-readings", "POST", "/end", []fiber.Handler{authMiddleware}, meterHandler.HandleEndJourney)

	config := apirouter.ReadOnlyConfig
	config.DelById = true
	config.AdminDelete = true
	r.RegisterCRUDRoutes(v1, "/meter-readings", meterHandler, config)
	return nil
}
