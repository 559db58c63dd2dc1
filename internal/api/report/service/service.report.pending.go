// Package reportsvc - bảng hàng chờ giao theo tháng.
package reportsvc

import (
	"context"
	"sort"
	"time"

	ordersModels "sales_ops/internal/api/orders/models"
	"sales_ops/internal/periods"
	"sales_ops/internal/utility"
)

// pendingMonthCache giữ kết quả gom theo tháng; status và salesman là
// bộ lọc hậu kỳ trên cache nên đổi hai filter đó không phải quét lại.
// Worker và events xóa key khi dữ liệu đơn hàng của tháng thay đổi.
var pendingMonthCache = utility.NewCache(30 * time.Minute)

// PendingItemRow dòng gom theo (salesman, itemName, status) của một tháng.
type PendingItemRow struct {
	Salesman   string  `json:"salesman"`
	ItemName   string  `json:"itemName"`
	Status     string  `json:"status"`
	TotalQty   float64 `json:"totalQty"`
	TotalPrice float64 `json:"totalPrice"`
}

// PendingSummaryRow dòng tổng hợp bỏ chiều salesman: (itemName, status).
type PendingSummaryRow struct {
	ItemName   string  `json:"itemName"`
	Status     string  `json:"status"`
	TotalQty   float64 `json:"totalQty"`
	TotalPrice float64 `json:"totalPrice"`
}

// PendingItemsResult kết quả bảng hàng chờ giao của một tháng.
type PendingItemsResult struct {
	Month   string              `json:"month"`
	Rows    []PendingItemRow    `json:"rows"`
	Summary []PendingSummaryRow `json:"summary"`
}

// aggregatePendingMonth gom mọi dòng hàng của các đơn trong tháng theo
// (salesman, itemName, status). Dòng qty không dương bị bỏ qua;
// totalPrice cộng dồn qty*rate.
func aggregatePendingMonth(orders []ordersModels.Order, month string) []PendingItemRow {
	type key struct {
		salesman string
		itemName string
		status   string
	}
	byKey := map[key]*PendingItemRow{}

	for i := range orders {
		o := &orders[i]
		t, ok := periods.ParseDate(o.Timestamp)
		if !ok || periods.MonthKey(t) != month {
			continue
		}
		status := o.EffectiveStatus()
		for _, item := range o.Items {
			if item.Qty <= 0 {
				continue
			}
			k := key{salesman: o.Salesman, itemName: item.Name, status: status}
			row, exists := byKey[k]
			if !exists {
				row = &PendingItemRow{Salesman: o.Salesman, ItemName: item.Name, Status: status}
				byKey[k] = row
			}
			row.TotalQty += item.Qty
			row.TotalPrice += item.Qty * item.Rate
		}
	}

	rows := make([]PendingItemRow, 0, len(byKey))
	for _, row := range byKey {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Salesman != rows[j].Salesman {
			return rows[i].Salesman < rows[j].Salesman
		}
		if rows[i].ItemName != rows[j].ItemName {
			return rows[i].ItemName < rows[j].ItemName
		}
		return rows[i].Status < rows[j].Status
	})
	return rows
}

// filterPendingRows áp bộ lọc status/salesman lên kết quả gom của tháng
// và dựng bảng tổng hợp bỏ chiều salesman từ tập đã lọc.
func filterPendingRows(rows []PendingItemRow, status string, salesman string) ([]PendingItemRow, []PendingSummaryRow) {
	filtered := make([]PendingItemRow, 0, len(rows))
	type key struct {
		itemName string
		status   string
	}
	byKey := map[key]*PendingSummaryRow{}
	for _, row := range rows {
		if status != "" && status != "all" && row.Status != status {
			continue
		}
		if salesman != "" && salesman != "all" && row.Salesman != salesman {
			continue
		}
		filtered = append(filtered, row)
		k := key{itemName: row.ItemName, status: row.Status}
		sum, exists := byKey[k]
		if !exists {
			sum = &PendingSummaryRow{ItemName: row.ItemName, Status: row.Status}
			byKey[k] = sum
		}
		sum.TotalQty += row.TotalQty
		sum.TotalPrice += row.TotalPrice
	}

	summary := make([]PendingSummaryRow, 0, len(byKey))
	for _, sum := range byKey {
		summary = append(summary, *sum)
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].ItemName != summary[j].ItemName {
			return summary[i].ItemName < summary[j].ItemName
		}
		return summary[i].Status < summary[j].Status
	})
	return filtered, summary
}

// pendingMonthRows trả về kết quả gom của tháng từ cache, quét lại khi
// cache chưa có.
func (s *ReportService) pendingMonthRows(ctx context.Context, month string) ([]PendingItemRow, error) {
	if cached, ok := pendingMonthCache.Get(month); ok {
		if rows, ok := cached.([]PendingItemRow); ok {
			return rows, nil
		}
	}
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	rows := aggregatePendingMonth(orders, month)
	pendingMonthCache.Set(month, rows)
	return rows, nil
}

// PendingItems trả về bảng hàng chờ giao của một tháng, lọc hậu kỳ theo
// status và salesman. Month rỗng lấy tháng hiện tại.
func (s *ReportService) PendingItems(ctx context.Context, month string, status string, salesman string) (*PendingItemsResult, error) {
	if month == "" {
		month = periods.CurrentMonthKey()
	}
	rows, err := s.pendingMonthRows(ctx, month)
	if err != nil {
		return nil, err
	}
	filtered, summary := filterPendingRows(rows, status, salesman)
	return &PendingItemsResult{Month: month, Rows: filtered, Summary: summary}, nil
}

// RefreshPendingMonth quét lại và ghi đè cache của một tháng. Worker nền
// dùng để giữ tháng nóng luôn sẵn.
func (s *ReportService) RefreshPendingMonth(ctx context.Context, month string) error {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return err
	}
	pendingMonthCache.Set(month, aggregatePendingMonth(orders, month))
	return nil
}

// InvalidatePendingMonth xóa cache của một tháng sau khi dữ liệu đơn đổi.
func InvalidatePendingMonth(month string) {
	pendingMonthCache.Delete(month)
}
