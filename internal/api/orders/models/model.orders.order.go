// Package models - model đơn hàng (Order) thuộc domain orders.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của đơn hàng. Chuỗi rỗng được đọc là pending.
const (
	StatusPending   = "pending"
	StatusDelivered = "delivered"
)

// GeoPoint tọa độ GPS nơi lập đơn.
type GeoPoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// OrderItem một dòng hàng trong đơn.
// Total lúc tạo = Qty*Rate*(1-Discount/100); sau khi giao hàng
// giá trị dòng được tính lại theo Qty*Rate (không áp lại discount).
type OrderItem struct {
	Name     string  `json:"name" bson:"name"`
	Qty      float64 `json:"qty" bson:"qty"`
	Rate     float64 `json:"rate" bson:"rate"`
	Discount float64 `json:"discount" bson:"discount"`
	Total    float64 `json:"total" bson:"total"`
}

// Order định nghĩa mô hình đơn hàng.
// Total giữ nguyên giá trị lúc tạo; FinalTotal là giá trị hiện hành,
// bằng 0 nghĩa là chưa có, khi đó đọc Total thay thế.
type Order struct {
	ID                    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CustomerName          string             `json:"customerName" bson:"customerName"`
	Mobile                string             `json:"mobile" bson:"mobile"`
	Location              string             `json:"location,omitempty" bson:"location,omitempty"`
	GPS                   *GeoPoint          `json:"gps,omitempty" bson:"gps,omitempty"`
	Salesman              string             `json:"salesman,omitempty" bson:"salesman,omitempty"`
	Items                 []OrderItem        `json:"items" bson:"items"`
	Total                 float64            `json:"total" bson:"total"`
	FinalTotal            float64            `json:"finalTotal,omitempty" bson:"finalTotal,omitempty"`
	Status                string             `json:"status,omitempty" bson:"status,omitempty"`
	Timestamp             string             `json:"timestamp" bson:"timestamp"`
	DeliveredAt           string             `json:"deliveredAt,omitempty" bson:"deliveredAt,omitempty"`
	LastPartialDeliveryAt string             `json:"lastPartialDeliveryAt,omitempty" bson:"lastPartialDeliveryAt,omitempty"`
	OriginalOrderID       string             `json:"originalOrderId,omitempty" bson:"originalOrderId,omitempty"`
	IsPartialDelivery     bool               `json:"isPartialDelivery,omitempty" bson:"isPartialDelivery,omitempty"`
	CreatedAt             int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt             int64              `json:"updatedAt" bson:"updatedAt"`
}

// EffectiveTotal trả về FinalTotal nếu đã có, ngược lại Total.
func (o *Order) EffectiveTotal() float64 {
	if o.FinalTotal != 0 {
		return o.FinalTotal
	}
	return o.Total
}

// EffectiveStatus trả về Status, chuỗi rỗng được đọc là pending.
func (o *Order) EffectiveStatus() string {
	if o.Status == "" {
		return StatusPending
	}
	return o.Status
}
