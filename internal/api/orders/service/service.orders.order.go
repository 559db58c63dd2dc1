// Package orderssvc - service đơn hàng với vòng đời giao hàng.
package orderssvc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "sales_ops/internal/api/base/service"
	ordersdto "sales_ops/internal/api/orders/dto"
	models "sales_ops/internal/api/orders/models"
	"sales_ops/internal/common"
	"sales_ops/internal/global"
	"sales_ops/internal/periods"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
	}, nil
}

// buildItems dựng danh sách dòng hàng từ input và tính tổng đơn.
// Giá trị dòng lúc tạo = qty*rate*(1-discount/100).
func buildItems(inputs []ordersdto.OrderItemInput) ([]models.OrderItem, float64, error) {
	if len(inputs) == 0 {
		return nil, 0, common.NewError(common.ErrCodeValidationInput, "Đơn hàng phải có ít nhất một dòng hàng", common.StatusBadRequest, nil)
	}
	items := make([]models.OrderItem, 0, len(inputs))
	var total float64
	for i, in := range inputs {
		if strings.TrimSpace(in.Name) == "" {
			return nil, 0, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Dòng hàng thứ %d thiếu tên", i+1), common.StatusBadRequest, nil)
		}
		lineTotal := in.Qty * in.Rate * (1 - in.Discount/100)
		items = append(items, models.OrderItem{
			Name:     in.Name,
			Qty:      in.Qty,
			Rate:     in.Rate,
			Discount: in.Discount,
			Total:    lineTotal,
		})
		total += lineTotal
	}
	return items, total, nil
}

// splitDelivery chia các dòng hàng thành phần đã giao và phần còn lại
// theo số lượng giao thực tế. Giá trị dòng sau khi giao = qty*rate,
// discount không được áp lại (giữ nguyên hành vi nghiệp vụ hiện có).
func splitDelivery(items []models.OrderItem, deliveredQty []float64) (delivered []models.OrderItem, remaining []models.OrderItem, err error) {
	if len(deliveredQty) != len(items) {
		return nil, nil, common.NewError(common.ErrCodeValidationInput, "Số lượng giao phải khớp với số dòng hàng của đơn", common.StatusBadRequest, nil)
	}
	for i, item := range items {
		d := deliveredQty[i]
		if d < 0 || d > item.Qty {
			return nil, nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Số lượng giao của dòng %d phải trong khoảng [0, %g]", i+1, item.Qty), common.StatusBadRequest, nil)
		}
		if d > 0 {
			delivered = append(delivered, models.OrderItem{
				Name:     item.Name,
				Qty:      d,
				Rate:     item.Rate,
				Discount: item.Discount,
				Total:    d * item.Rate,
			})
		}
		if r := item.Qty - d; r > 0 {
			remaining = append(remaining, models.OrderItem{
				Name:     item.Name,
				Qty:      r,
				Rate:     item.Rate,
				Discount: item.Discount,
				Total:    r * item.Rate,
			})
		}
	}
	return delivered, remaining, nil
}

// sumItemTotals cộng giá trị các dòng hàng.
func sumItemTotals(items []models.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Total
	}
	return total
}

// Create tạo đơn hàng mới ở trạng thái pending, gắn salesman của người tạo.
func (s *OrderService) Create(ctx context.Context, input *ordersdto.OrderCreateInput, salesman string) (models.Order, error) {
	var zero models.Order
	if strings.TrimSpace(input.CustomerName) == "" || strings.TrimSpace(input.Mobile) == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, "Đơn hàng phải có tên khách và số điện thoại", common.StatusBadRequest, nil)
	}
	items, total, err := buildItems(input.Items)
	if err != nil {
		return zero, err
	}
	location := input.Location
	if location == "" {
		location = "Manual"
	}
	order := models.Order{
		CustomerName: input.CustomerName,
		Mobile:       input.Mobile,
		Location:     location,
		GPS:          input.GPS,
		Salesman:     salesman,
		Items:        items,
		Total:        total,
		Status:       models.StatusPending,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, order)
}

// Update cập nhật đơn hàng, tính lại giá trị khi đổi dòng hàng.
// Status và Timestamp giữ nguyên trừ khi input cung cấp tường minh.
func (s *OrderService) Update(ctx context.Context, id primitive.ObjectID, input *ordersdto.OrderUpdateInput) (models.Order, error) {
	var zero models.Order
	set := map[string]interface{}{}
	if input.CustomerName != "" {
		set["customerName"] = input.CustomerName
	}
	if input.Mobile != "" {
		set["mobile"] = input.Mobile
	}
	if input.Location != "" {
		set["location"] = input.Location
	}
	if input.GPS != nil {
		set["gps"] = input.GPS
	}
	if len(input.Items) > 0 {
		items, total, err := buildItems(input.Items)
		if err != nil {
			return zero, err
		}
		set["items"] = items
		// Total gốc lúc tạo giữ nguyên, giá trị hiện hành đi vào finalTotal
		set["finalTotal"] = total
	}
	if input.Status != "" {
		set["status"] = input.Status
	}
	if input.Timestamp != "" {
		set["timestamp"] = input.Timestamp
	}
	if len(set) == 0 {
		return zero, common.ErrInvalidInput
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// ConfirmDelivery xác nhận giao hàng cho một đơn.
//
// Giao đủ (không còn dòng nào dư): cập nhật tại chỗ sang delivered.
// Giao một phần: tạo đơn con chứa phần đã giao (status delivered,
// originalOrderId trỏ về đơn gốc) rồi cập nhật đơn gốc còn phần dư,
// status quay về pending. Hai lần ghi không atomic; nếu ghi đơn gốc
// thất bại sau khi đơn con đã tạo, chỉ log warning kèm cả hai id và
// trả lỗi, không có bù trừ.
func (s *OrderService) ConfirmDelivery(ctx context.Context, id primitive.ObjectID, input *ordersdto.ConfirmDeliveryInput) (models.Order, error) {
	var zero models.Order
	order, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	delivered, remaining, err := splitDelivery(order.Items, input.DeliveredQty)
	if err != nil {
		return zero, err
	}
	if len(delivered) == 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Phải giao ít nhất một dòng hàng", common.StatusBadRequest, nil)
	}
	now := time.Now().Format(time.RFC3339)

	if len(remaining) == 0 {
		// Giao đủ: cập nhật tại chỗ
		updateData := &basesvc.UpdateData{Set: map[string]interface{}{
			"status":      models.StatusDelivered,
			"items":       delivered,
			"finalTotal":  sumItemTotals(delivered),
			"deliveredAt": now,
		}}
		return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	}

	// Giao một phần: tạo đơn con cho phần đã giao
	child := models.Order{
		CustomerName:      order.CustomerName,
		Mobile:            order.Mobile,
		Location:          order.Location,
		GPS:               order.GPS,
		Salesman:          order.Salesman,
		Items:             delivered,
		Total:             sumItemTotals(delivered),
		FinalTotal:        sumItemTotals(delivered),
		Status:            models.StatusDelivered,
		Timestamp:         now,
		DeliveredAt:       now,
		OriginalOrderID:   order.ID.Hex(),
		IsPartialDelivery: true,
	}
	createdChild, err := s.BaseServiceMongoImpl.InsertOne(ctx, child)
	if err != nil {
		return zero, err
	}

	updateData := &basesvc.UpdateData{Set: map[string]interface{}{
		"status":                models.StatusPending,
		"items":                 remaining,
		"finalTotal":            sumItemTotals(remaining),
		"lastPartialDeliveryAt": now,
	}}
	parent, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"order_id":       order.ID.Hex(),
			"child_order_id": createdChild.ID.Hex(),
			"error":          err.Error(),
		}).Warn("ConfirmDelivery: Đơn con đã tạo nhưng cập nhật đơn gốc thất bại, dữ liệu có thể không nhất quán")
		return zero, err
	}
	return parent, nil
}

// MarkPending đưa đơn về trạng thái pending, không khôi phục dòng hàng.
func (s *OrderService) MarkPending(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	updateData := &basesvc.UpdateData{Set: map[string]interface{}{
		"status": models.StatusPending,
	}}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

// ListByPeriod trả về đơn hàng theo bộ lọc thời gian trên timestamp,
// salesman khác rỗng giới hạn kết quả theo người bán. Kết quả sắp xếp
// mới nhất trước.
func (s *OrderService) ListByPeriod(ctx context.Context, f periods.Filter, salesman string) ([]models.Order, error) {
	filter := bson.M{}
	if salesman != "" {
		filter["salesman"] = salesman
	}
	orders, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if f.Matches(o.Timestamp) {
			matched = append(matched, o)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Timestamp > matched[j].Timestamp
	})
	return matched, nil
}
