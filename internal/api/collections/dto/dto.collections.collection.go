// Package dto - input/output cho domain collections.
package dto

import (
	models "sales_ops/internal/api/collections/models"
)

// CollectionCreateInput dữ liệu ghi một phiếu thu.
// Date để trống sẽ lấy ngày hôm nay theo giờ địa phương.
type CollectionCreateInput struct {
	CustomerName string  `json:"customerName" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gte=0"`
	Date         string  `json:"date,omitempty"`
}

// CollectionUpdateInput phiếu thu không bao giờ bị sửa, type này chỉ
// tồn tại để thỏa generic của base handler.
type CollectionUpdateInput struct{}

// CollectionListResult danh sách phiếu thu kèm tổng tiền của tập đã lọc.
type CollectionListResult struct {
	Items       []models.Collection `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
}
