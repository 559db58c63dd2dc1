// Package reportsvc - số liệu dashboard tổng quan.
package reportsvc

import (
	"context"
	"sort"
	"time"

	collectionsModels "sales_ops/internal/api/collections/models"
	ordersModels "sales_ops/internal/api/orders/models"
	"sales_ops/internal/periods"
)

// TopPerformerItem một salesman trong bảng xếp hạng, BarWidth là phần
// trăm so với người đứng đầu để vẽ thanh ngang.
type TopPerformerItem struct {
	Salesman string  `json:"salesman"`
	Value    float64 `json:"value"`
	BarWidth float64 `json:"barWidth"`
}

// RecentOrderItem một đơn trong danh sách hoạt động gần đây.
type RecentOrderItem struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customerName"`
	Salesman     string  `json:"salesman"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	Timestamp    string  `json:"timestamp"`
}

// DashboardResult toàn bộ số liệu của màn hình dashboard trong kỳ đã lọc.
// TotalPending = TotalSales − TotalCollected là con số xấp xỉ có chủ đích,
// không phải tổng chưa trả theo từng đơn.
type DashboardResult struct {
	TotalSales     float64            `json:"totalSales"`
	TotalCollected float64            `json:"totalCollected"`
	TotalPending   float64            `json:"totalPending"`
	StatusCounts   map[string]int     `json:"statusCounts"`
	TopPerformers  []TopPerformerItem `json:"topPerformers"`
	RecentActivity []RecentOrderItem  `json:"recentActivity"`
}

// isNearDuplicate hai đơn bị coi là trùng khi cùng tên khách, cùng giá
// trị hiện hành và timestamp lệch nhau dưới 1 giây.
func isNearDuplicate(a *ordersModels.Order, b *ordersModels.Order) bool {
	if a.CustomerName != b.CustomerName || a.EffectiveTotal() != b.EffectiveTotal() {
		return false
	}
	ta, okA := periods.ParseDate(a.Timestamp)
	tb, okB := periods.ParseDate(b.Timestamp)
	if !okA || !okB {
		return false
	}
	delta := ta.Sub(tb)
	if delta < 0 {
		delta = -delta
	}
	return delta < time.Second
}

// computeDashboard dựng số liệu dashboard trên tập đã lọc theo kỳ: đơn
// khớp theo timestamp, phiếu thu khớp theo date.
func computeDashboard(orders []ordersModels.Order, collections []collectionsModels.Collection, f periods.Filter) *DashboardResult {
	result := &DashboardResult{
		StatusCounts:   map[string]int{ordersModels.StatusPending: 0, ordersModels.StatusDelivered: 0},
		TopPerformers:  []TopPerformerItem{},
		RecentActivity: []RecentOrderItem{},
	}

	salesBySalesman := map[string]float64{}
	filtered := make([]ordersModels.Order, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		if !f.Matches(o.Timestamp) {
			continue
		}
		filtered = append(filtered, *o)
		value := o.EffectiveTotal()
		result.TotalSales += value
		result.StatusCounts[o.EffectiveStatus()]++
		salesBySalesman[salesmanLabel(o.Salesman)] += value
	}
	for i := range collections {
		r := &collections[i]
		if !f.Matches(r.Date) {
			continue
		}
		result.TotalCollected += r.Amount
	}
	result.TotalPending = result.TotalSales - result.TotalCollected

	// Xếp hạng salesman theo doanh số, thanh ngang chuẩn hóa theo người
	// đứng đầu, mẫu số tối thiểu là 1 để tránh chia cho 0
	for salesman, value := range salesBySalesman {
		result.TopPerformers = append(result.TopPerformers, TopPerformerItem{Salesman: salesman, Value: value})
	}
	sort.Slice(result.TopPerformers, func(i, j int) bool {
		if result.TopPerformers[i].Value != result.TopPerformers[j].Value {
			return result.TopPerformers[i].Value > result.TopPerformers[j].Value
		}
		return result.TopPerformers[i].Salesman < result.TopPerformers[j].Salesman
	})
	maxSales := 1.0
	if len(result.TopPerformers) > 0 && result.TopPerformers[0].Value > maxSales {
		maxSales = result.TopPerformers[0].Value
	}
	for i := range result.TopPerformers {
		result.TopPerformers[i].BarWidth = result.TopPerformers[i].Value / maxSales * 100
	}

	// Hoạt động gần đây: 5 đơn mới nhất sau khi loại các bản ghi gần trùng
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Timestamp > filtered[j].Timestamp
	})
	kept := make([]ordersModels.Order, 0, 5)
	for i := range filtered {
		o := &filtered[i]
		duplicate := false
		for j := range kept {
			if isNearDuplicate(o, &kept[j]) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		kept = append(kept, *o)
		if len(kept) == 5 {
			break
		}
	}
	for i := range kept {
		o := &kept[i]
		result.RecentActivity = append(result.RecentActivity, RecentOrderItem{
			ID:           o.ID.Hex(),
			CustomerName: o.CustomerName,
			Salesman:     salesmanLabel(o.Salesman),
			Amount:       o.EffectiveTotal(),
			Status:       o.EffectiveStatus(),
			Timestamp:    o.Timestamp,
		})
	}
	return result
}

// Dashboard trả về toàn bộ số liệu của màn hình dashboard trong kỳ đã lọc.
func (s *ReportService) Dashboard(ctx context.Context, f periods.Filter) (*DashboardResult, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	collections, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}
	return computeDashboard(orders, collections, f), nil
}
