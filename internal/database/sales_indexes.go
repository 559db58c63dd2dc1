// Package database - Index cho các collection nghiệp vụ bán hàng.
package database

import (
	"context"
	"strings"

	"sales_ops/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateSalesIndexes tạo các index phục vụ truy vấn nghiệp vụ.
// Gọi một lần lúc khởi động, sau EnsureDatabaseAndCollections.
func CreateSalesIndexes(ctx context.Context, db *mongo.Database) error {
	// sales_orders: (customerName) — tính công nợ theo khách
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customerName", Value: 1}},
		Options: options.Index().SetName("order_customer"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sales_orders: (salesman, timestamp desc) — danh sách đơn theo người bán
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "salesman", Value: 1},
			{Key: "timestamp", Value: -1},
		},
		Options: options.Index().SetName("order_salesman_ts"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sales_orders: (status) — đếm phân bố trạng thái dashboard
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("order_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sales_collections: (customerName) — đối soát thu tiền theo khách
	collections := db.Collection(global.MongoDB_ColNames.Collections)
	if _, err := collections.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customerName", Value: 1}},
		Options: options.Index().SetName("collection_customer"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sales_collections: (salesman, date) — lọc phiếu thu theo người bán + ngày
	if _, err := collections.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "salesman", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetName("collection_salesman_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sales_meter_readings: (salesman, date) — kiểm tra bản ghi mở trong ngày
	meter := db.Collection(global.MongoDB_ColNames.MeterReadings)
	if _, err := meter.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "salesman", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetName("meter_salesman_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// auth_users: name unique
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("user_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
