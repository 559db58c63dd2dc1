package reportsvc

import (
	"testing"
	"time"

	collectionsModels "sales_ops/internal/api/collections/models"
	ordersModels "sales_ops/internal/api/orders/models"
	"sales_ops/internal/periods"
)

func order(customer, salesman, status, timestamp string, total, finalTotal float64, items ...ordersModels.OrderItem) ordersModels.Order {
	return ordersModels.Order{
		CustomerName: customer,
		Salesman:     salesman,
		Status:       status,
		Timestamp:    timestamp,
		Total:        total,
		FinalTotal:   finalTotal,
		Items:        items,
	}
}

func TestComputeBalancesSingleCustomer(t *testing.T) {
	orders := []ordersModels.Order{
		order("Alice", "bob", "pending", "2024-05-01T10:00:00+07:00", 300, 0),
		order("Alice", "bob", "delivered", "2024-05-02T10:00:00+07:00", 250, 200),
		order("Carol", "bob", "pending", "2024-05-03T10:00:00+07:00", 400, 0),
	}
	collections := []collectionsModels.Collection{
		{CustomerName: "Alice", Amount: 300, Date: "2024-05-05"},
	}
	rows := computeBalances(orders, collections, "Alice")
	if len(rows) != 1 {
		t.Fatalf("Phải trả về đúng một dòng, nhận được %d", len(rows))
	}
	// 300 + 200 (finalTotal thay total) - 300 = 200
	if rows[0].Balance != 200 {
		t.Errorf("Số dư phải là 200, nhận được %g", rows[0].Balance)
	}
	if rows[0].IsFullyPaid {
		t.Errorf("Số dư dương không được coi là đã trả đủ")
	}
}

func TestComputeBalancesFullyPaidAndCancelled(t *testing.T) {
	orders := []ordersModels.Order{
		order("Dan", "bob", "pending", "2024-05-01T10:00:00+07:00", 100, 0),
		order("Dan", "bob", "cancelled", "2024-05-02T10:00:00+07:00", 999, 0),
	}
	collections := []collectionsModels.Collection{
		{CustomerName: "Dan", Amount: 100, Date: "2024-05-05"},
		{CustomerName: "Dan", Amount: 50, Date: "2024-05-06"},
	}
	rows := computeBalances(orders, collections, "Dan")
	if rows[0].TotalOrders != 100 {
		t.Errorf("Đơn cancelled phải bị loại, tổng đơn phải là 100, nhận được %g", rows[0].TotalOrders)
	}
	if rows[0].Balance != -50 {
		t.Errorf("Số dư phải là -50, nhận được %g", rows[0].Balance)
	}
	if !rows[0].IsFullyPaid {
		t.Errorf("Số dư âm phải được coi là đã trả đủ")
	}
}

func TestComputeBalancesIgnoresPeriodFilter(t *testing.T) {
	// Số dư luôn tính trên toàn bộ dữ liệu, kể cả đơn rất cũ
	orders := []ordersModels.Order{
		order("Eve", "bob", "pending", "2020-01-01T10:00:00+07:00", 500, 0),
	}
	rows := computeBalances(orders, nil, "Eve")
	if rows[0].Balance != 500 {
		t.Errorf("Đơn cũ vẫn phải vào số dư, nhận được %g", rows[0].Balance)
	}
}

func TestComputeSummaryUnionOfSalesmen(t *testing.T) {
	orders := []ordersModels.Order{
		order("Alice", "bob", "pending", "2024-05-01T10:00:00+07:00", 300, 0),
	}
	collections := []collectionsModels.Collection{
		{CustomerName: "Carol", Salesman: "tam", Amount: 120, Date: "2024-05-02"},
	}
	f := periods.Filter{Kind: periods.KindSpecificMonth, Month: "2024-05"}
	rows := computeSummary(orders, collections, f)
	if len(rows) != 2 {
		t.Fatalf("Tập salesman phải là hợp của hai nguồn, nhận được %d dòng", len(rows))
	}
	for _, row := range rows {
		switch row.Salesman {
		case "bob":
			if row.Orders != 300 || row.Collections != 0 {
				t.Errorf("Dòng bob sai: %+v", row)
			}
		case "tam":
			if row.Orders != 0 || row.Collections != 120 {
				t.Errorf("Dòng tam sai: %+v", row)
			}
		default:
			t.Errorf("Salesman lạ trong kết quả: %s", row.Salesman)
		}
	}
}

func TestComputeLedgerSortedWithTotals(t *testing.T) {
	orders := []ordersModels.Order{
		order("Alice", "bob", "delivered", "2024-05-10T10:00:00+07:00", 200, 0),
		order("Carol", "bob", "pending", "2024-05-02T10:00:00+07:00", 300, 0),
		order("Other", "tam", "pending", "2024-05-03T10:00:00+07:00", 999, 0),
	}
	collections := []collectionsModels.Collection{
		{CustomerName: "Alice", Salesman: "bob", Amount: 150, Date: "2024-05-05"},
	}
	result := computeLedger(orders, collections, "bob", "2024-05")
	if len(result.Rows) != 3 {
		t.Fatalf("Sổ của bob phải có 3 dòng, nhận được %d", len(result.Rows))
	}
	if result.Rows[0].Date != "2024-05-02" || result.Rows[1].Date != "2024-05-05" || result.Rows[2].Date != "2024-05-10" {
		t.Errorf("Các dòng phải sắp xếp tăng dần theo ngày: %+v", result.Rows)
	}
	if result.TotalOrders != 500 {
		t.Errorf("Tổng đơn phải là 500, nhận được %g", result.TotalOrders)
	}
	if result.TotalDelivered != 200 {
		t.Errorf("Tổng đã giao phải là 200, nhận được %g", result.TotalDelivered)
	}
	if result.TotalCollections != 150 {
		t.Errorf("Tổng tiền thu phải là 150, nhận được %g", result.TotalCollections)
	}
}

func TestAggregatePendingMonth(t *testing.T) {
	orders := []ordersModels.Order{
		order("Alice", "Bob", "", "2024-05-01T10:00:00+07:00", 0, 0,
			ordersModels.OrderItem{Name: "Widget", Qty: 3, Rate: 10}),
		order("Carol", "Bob", "delivered", "2024-05-02T10:00:00+07:00", 0, 0,
			ordersModels.OrderItem{Name: "Widget", Qty: 2, Rate: 10},
			ordersModels.OrderItem{Name: "Bỏ qua", Qty: 0, Rate: 10}),
		order("Dan", "Bob", "pending", "2024-06-01T10:00:00+07:00", 0, 0,
			ordersModels.OrderItem{Name: "Widget", Qty: 99, Rate: 10}),
	}
	rows := aggregatePendingMonth(orders, "2024-05")
	if len(rows) != 2 {
		t.Fatalf("Tháng 2024-05 phải có 2 dòng gom, nhận được %d", len(rows))
	}
	// Status rỗng được đọc là pending
	_, summary := filterPendingRows(rows, "", "")
	if len(summary) != 2 {
		t.Fatalf("Bảng tổng hợp phải có 2 dòng cho Widget, nhận được %d", len(summary))
	}
	for _, sum := range summary {
		switch sum.Status {
		case "pending":
			if sum.TotalQty != 3 || sum.TotalPrice != 30 {
				t.Errorf("Dòng pending sai: %+v", sum)
			}
		case "delivered":
			if sum.TotalQty != 2 || sum.TotalPrice != 20 {
				t.Errorf("Dòng delivered sai: %+v", sum)
			}
		default:
			t.Errorf("Status lạ: %s", sum.Status)
		}
	}
}

func TestFilterPendingRowsPostFilters(t *testing.T) {
	rows := []PendingItemRow{
		{Salesman: "Bob", ItemName: "Widget", Status: "pending", TotalQty: 3, TotalPrice: 30},
		{Salesman: "Tam", ItemName: "Widget", Status: "pending", TotalQty: 5, TotalPrice: 50},
		{Salesman: "Bob", ItemName: "Widget", Status: "delivered", TotalQty: 2, TotalPrice: 20},
	}
	filtered, summary := filterPendingRows(rows, "pending", "Bob")
	if len(filtered) != 1 || filtered[0].TotalQty != 3 {
		t.Errorf("Lọc pending+Bob phải còn đúng một dòng qty 3: %+v", filtered)
	}
	if len(summary) != 1 || summary[0].TotalQty != 3 {
		t.Errorf("Tổng hợp sau lọc sai: %+v", summary)
	}

	// Bỏ lọc salesman: tổng hợp gộp cả hai người
	_, summaryAll := filterPendingRows(rows, "pending", "all")
	if len(summaryAll) != 1 || summaryAll[0].TotalQty != 8 {
		t.Errorf("Tổng hợp pending mọi salesman phải có qty 8: %+v", summaryAll)
	}
}

func TestComputeDashboardFigures(t *testing.T) {
	orders := []ordersModels.Order{
		order("Alice", "bob", "pending", "2024-05-01T10:00:00+07:00", 300, 0),
		order("Carol", "", "delivered", "2024-05-02T10:00:00+07:00", 200, 0),
	}
	collections := []collectionsModels.Collection{
		{CustomerName: "Alice", Salesman: "bob", Amount: 100, Date: "2024-05-03"},
	}
	f := periods.Filter{Kind: periods.KindSpecificMonth, Month: "2024-05"}
	result := computeDashboard(orders, collections, f)

	if result.TotalSales != 500 {
		t.Errorf("Tổng doanh số phải là 500, nhận được %g", result.TotalSales)
	}
	if result.TotalCollected != 100 {
		t.Errorf("Tổng tiền thu phải là 100, nhận được %g", result.TotalCollected)
	}
	if result.TotalPending != 400 {
		t.Errorf("Giá trị chờ thu phải là 500-100=400, nhận được %g", result.TotalPending)
	}
	if result.StatusCounts["pending"] != 1 || result.StatusCounts["delivered"] != 1 {
		t.Errorf("Phân bố trạng thái sai: %+v", result.StatusCounts)
	}
	if result.TopPerformers[0].Salesman != "bob" || result.TopPerformers[0].BarWidth != 100 {
		t.Errorf("Người đứng đầu phải là bob với thanh 100%%: %+v", result.TopPerformers[0])
	}
	// Salesman rỗng phải mang nhãn Unknown
	found := false
	for _, p := range result.TopPerformers {
		if p.Salesman == UnknownSalesman {
			found = true
		}
	}
	if !found {
		t.Errorf("Đơn không có salesman phải vào nhãn Unknown: %+v", result.TopPerformers)
	}
}

func TestComputeDashboardRecentActivityDedup(t *testing.T) {
	base := time.Date(2024, 5, 10, 10, 0, 0, 0, time.Local)
	ts := func(offset time.Duration) string {
		return base.Add(offset).Format(time.RFC3339)
	}
	orders := []ordersModels.Order{
		order("Alice", "bob", "pending", ts(0), 300, 0),
		// Gần trùng: cùng khách, cùng giá trị, lệch 500ms
		order("Alice", "bob", "pending", base.Add(500*time.Millisecond).Format(time.RFC3339Nano), 300, 0),
		// Không trùng: lệch quá 1 giây
		order("Alice", "bob", "pending", ts(2*time.Second), 300, 0),
		order("Carol", "bob", "pending", ts(time.Minute), 100, 0),
	}
	f := periods.Filter{Kind: periods.KindAll}
	result := computeDashboard(orders, nil, f)
	if len(result.RecentActivity) != 3 {
		t.Fatalf("Sau khi loại bản gần trùng phải còn 3 đơn, nhận được %d", len(result.RecentActivity))
	}
	if result.RecentActivity[0].CustomerName != "Carol" {
		t.Errorf("Đơn mới nhất phải đứng đầu danh sách: %+v", result.RecentActivity[0])
	}
}

func TestComputeDashboardMaxSalesFloor(t *testing.T) {
	orders := []ordersModels.Order{
		order("Alice", "bob", "pending", "2024-05-01T10:00:00+07:00", 0.5, 0),
	}
	f := periods.Filter{Kind: periods.KindAll}
	result := computeDashboard(orders, nil, f)
	// Doanh số dưới 1 vẫn chia cho mẫu số 1
	if result.TopPerformers[0].BarWidth != 50 {
		t.Errorf("Thanh ngang với doanh số 0.5 và sàn 1 phải là 50, nhận được %g", result.TopPerformers[0].BarWidth)
	}
}

// Đơn hàng thay đổi phải xóa được cache của tháng tương ứng để lần đọc kế
// tiếp quét lại dữ liệu mới thay vì trả bản gom cũ.
func TestInvalidatePendingMonthEvictsCache(t *testing.T) {
	stale := []PendingItemRow{
		{Salesman: "bob", ItemName: "Widget", Status: "pending", TotalQty: 3, TotalPrice: 150},
	}
	pendingMonthCache.Set("2024-05", stale)

	InvalidatePendingMonth("2024-05")

	if _, ok := pendingMonthCache.Get("2024-05"); ok {
		t.Fatal("Cache của tháng 2024-05 phải bị xóa sau khi invalidate")
	}
}

func TestInvalidatePendingMonthLeavesOtherMonths(t *testing.T) {
	pendingMonthCache.Set("2024-04", []PendingItemRow{})
	pendingMonthCache.Set("2024-05", []PendingItemRow{})

	InvalidatePendingMonth("2024-05")

	if _, ok := pendingMonthCache.Get("2024-04"); !ok {
		t.Error("Invalidate một tháng không được ảnh hưởng cache tháng khác")
	}
	pendingMonthCache.Delete("2024-04")
}
