// Package dto - input/output cho domain meter.
package dto

import (
	models "sales_ops/internal/api/meter/models"
)

// StartJourneyInput dữ liệu mở chuyến đi (chốt số đầu ngày).
type StartJourneyInput struct {
	StartReading  float64          `json:"startReading" validate:"required,gt=0"`
	StartLocation *models.GeoPoint `json:"startLocation,omitempty"`
}

// EndJourneyInput dữ liệu đóng chuyến đi (chốt số cuối ngày).
type EndJourneyInput struct {
	EndReading  float64          `json:"endReading" validate:"required,gt=0"`
	EndLocation *models.GeoPoint `json:"endLocation,omitempty"`
}

// MeterReadingRow một dòng nhật ký kèm quãng đường và công tác phí dẫn xuất.
// Distance và Allowance bằng 0 khi chuyến đi còn mở.
type MeterReadingRow struct {
	models.MeterReading
	Distance  float64 `json:"distance"`
	Allowance float64 `json:"allowance"`
}

// MeterReadingListResult danh sách nhật ký kèm tổng quãng đường và tổng công tác phí.
type MeterReadingListResult struct {
	Items          []MeterReadingRow `json:"items"`
	TotalDistance  float64           `json:"totalDistance"`
	TotalAllowance float64           `json:"totalAllowance"`
}
