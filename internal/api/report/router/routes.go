// Package router đăng ký các route thuộc domain report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"sales_ops/internal/api/middleware"
	reporthdl "sales_ops/internal/api/report/handler"
	apirouter "sales_ops/internal/api/router"
)

// Register đăng ký tất cả route report lên v1. Mọi báo cáo đều yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/balance", []fiber.Handler{authMiddleware}, reportHandler.HandleBalance)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/summary", []fiber.Handler{authMiddleware}, reportHandler.HandleSummary)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/ledger", []fiber.Handler{authMiddleware}, reportHandler.HandleLedger)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/pending-items", []fiber.Handler{authMiddleware}, reportHandler.HandlePendingItems)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/dashboard", []fiber.Handler{authMiddleware}, reportHandler.HandleDashboard)
	return nil
}
