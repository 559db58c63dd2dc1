// Package models - model nhật ký công tơ mét (MeterReading) thuộc domain meter.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint tọa độ GPS tại thời điểm chốt số.
type GeoPoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// MeterReading định nghĩa một chuyến đi trong ngày của salesman.
// Bản ghi mở khi mới có số đầu, đóng khi đã chốt số cuối.
// Mỗi (salesman, date) chỉ có một bản ghi mở, service kiểm tra trước khi ghi.
type MeterReading struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Salesman      string             `json:"salesman" bson:"salesman"`
	Date          string             `json:"date" bson:"date"`
	StartReading  float64            `json:"startReading" bson:"startReading"`
	StartLocation *GeoPoint          `json:"startLocation,omitempty" bson:"startLocation,omitempty"`
	StartTime     string             `json:"startTime" bson:"startTime"`
	EndReading    float64            `json:"endReading,omitempty" bson:"endReading,omitempty"`
	EndLocation   *GeoPoint          `json:"endLocation,omitempty" bson:"endLocation,omitempty"`
	EndTime       string             `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Timestamp     string             `json:"timestamp" bson:"timestamp"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsOpen cho biết chuyến đi đã chốt số cuối hay chưa.
func (m *MeterReading) IsOpen() bool {
	return m.EndTime == ""
}
