package global

import (
	"sales_ops/config"
	"sales_ops/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// SalesOps_CollectionName chứa tên các collection trong MongoDB
type SalesOps_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Orders        string // Tên collection cho đơn hàng
	Collections   string // Tên collection cho phiếu thu tiền
	MeterReadings string // Tên collection cho nhật ký công tơ mét
}

// Các biến toàn cục
var Validate *validator.Validate                                     // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                    // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                               // Cấu hình của server
var MongoDB_ColNames SalesOps_CollectionName                         // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
