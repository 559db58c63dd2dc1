// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role hợp lệ của người dùng.
const (
	RoleSales = "sales"
	RoleAdmin = "admin"
)

// User định nghĩa mô hình người dùng.
// LastLoginDate lưu ngày đăng nhập gần nhất (YYYY-MM-DD theo giờ địa phương)
// để chặn role sales đăng nhập quá một lần trong ngày.
type User struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" index:"unique"`
	Password      string             `json:"-" bson:"passwordHash,omitempty"`
	Salt          string             `json:"-" bson:"salt,omitempty"`
	Role          string             `json:"role" bson:"role"`
	LastLoginDate string             `json:"lastLoginDate,omitempty" bson:"lastLoginDate,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
