// Package models - model phiếu thu tiền (Collection) thuộc domain collections.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection định nghĩa mô hình phiếu thu tiền của khách.
// Bản ghi không bao giờ bị sửa sau khi tạo, chỉ admin được xóa.
// Date là ngày ghi thu dạng YYYY-MM-DD theo giờ địa phương.
type Collection struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerName string             `json:"customerName" bson:"customerName"`
	Amount       float64            `json:"amount" bson:"amount"`
	Date         string             `json:"date" bson:"date"`
	Salesman     string             `json:"salesman,omitempty" bson:"salesman,omitempty"`
	Timestamp    string             `json:"timestamp" bson:"timestamp"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
