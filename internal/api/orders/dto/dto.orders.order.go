// Package dto - input cho domain orders.
package dto

import (
	models "sales_ops/internal/api/orders/models"
)

// OrderItemInput một dòng hàng trong input tạo/sửa đơn.
type OrderItemInput struct {
	Name     string  `json:"name" validate:"required"`
	Qty      float64 `json:"qty" validate:"required,gt=0"`
	Rate     float64 `json:"rate" validate:"gte=0"`
	Discount float64 `json:"discount" validate:"gte=0,lte=100"`
}

// OrderCreateInput dữ liệu tạo đơn hàng mới.
type OrderCreateInput struct {
	CustomerName string           `json:"customerName" validate:"required"`
	Mobile       string           `json:"mobile" validate:"required"`
	Location     string           `json:"location,omitempty"`
	GPS          *models.GeoPoint `json:"gps,omitempty"`
	Items        []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderUpdateInput dữ liệu cập nhật đơn hàng. Status và Timestamp
// chỉ thay đổi khi được cung cấp tường minh.
type OrderUpdateInput struct {
	CustomerName string           `json:"customerName,omitempty"`
	Mobile       string           `json:"mobile,omitempty"`
	Location     string           `json:"location,omitempty"`
	GPS          *models.GeoPoint `json:"gps,omitempty"`
	Items        []OrderItemInput `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	Status       string           `json:"status,omitempty" validate:"omitempty,oneof=pending delivered"`
	Timestamp    string           `json:"timestamp,omitempty"`
}

// ConfirmDeliveryInput số lượng giao thực tế, mỗi phần tử ứng với một
// dòng hàng của đơn theo đúng thứ tự.
type ConfirmDeliveryInput struct {
	DeliveredQty []float64 `json:"deliveredQty" validate:"required,min=1"`
}
