// Package router đăng ký các route thuộc domain auth: login, profile, quản lý user, health.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "sales_ops/internal/api/auth/handler"
	basehdl "sales_ops/internal/api/base/handler"
	"sales_ops/internal/api/middleware"
	apirouter "sales_ops/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	v1.Get("/system/health", systemHandler.HandleHealth)

	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	v1.Post("/auth/login", userHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)

	// Quản lý người dùng chỉ dành cho admin
	adminMiddleware := middleware.AuthMiddleware("admin")
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "", []fiber.Handler{adminMiddleware}, userHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "", []fiber.Handler{adminMiddleware}, userHandler.Find)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/paginate", []fiber.Handler{adminMiddleware}, userHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/:id", []fiber.Handler{adminMiddleware}, userHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PUT", "/:id", []fiber.Handler{adminMiddleware}, userHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "DELETE", "/:id", []fiber.Handler{adminMiddleware}, userHandler.DeleteById)
	return nil
}
