// Package router đăng ký các route thuộc domain collections.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	collectionshdl "sales_ops/internal/api/collections/handler"
	apirouter "sales_ops/internal/api/router"
)

// Register đăng ký tất cả route collections lên v1.
// Phiếu thu không có route sửa; xóa chỉ dành cho admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	collectionHandler, err := collectionshdl.NewCollectionHandler()
	if err != nil {
		return fmt.Errorf("failed to create collection handler: %w", err)
	}

	config := apirouter.ReadWriteConfig
	config.UpdById = false
	config.AdminDelete = true
	r.RegisterCRUDRoutes(v1, "/collections", collectionHandler, config)
	return nil
}
