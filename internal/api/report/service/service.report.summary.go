// Package reportsvc - tổng hợp doanh số và tiền thu theo salesman.
package reportsvc

import (
	"context"
	"sort"

	collectionsModels "sales_ops/internal/api/collections/models"
	ordersModels "sales_ops/internal/api/orders/models"
	"sales_ops/internal/periods"
)

// SalesmanSummaryRow doanh số và tiền thu của một salesman trong kỳ đã lọc.
type SalesmanSummaryRow struct {
	Salesman    string  `json:"salesman"`
	Orders      float64 `json:"orders"`
	Collections float64 `json:"collections"`
}

// computeSummary gom doanh số theo salesman trên tập đã lọc theo kỳ.
// Tập salesman là hợp của các định danh xuất hiện ở đơn và phiếu thu.
func computeSummary(orders []ordersModels.Order, collections []collectionsModels.Collection, f periods.Filter) []SalesmanSummaryRow {
	bySalesman := map[string]*SalesmanSummaryRow{}
	get := func(salesman string) *SalesmanSummaryRow {
		row, ok := bySalesman[salesman]
		if !ok {
			row = &SalesmanSummaryRow{Salesman: salesman}
			bySalesman[salesman] = row
		}
		return row
	}

	for i := range orders {
		o := &orders[i]
		if !f.Matches(o.Timestamp) {
			continue
		}
		get(o.Salesman).Orders += o.EffectiveTotal()
	}
	for i := range collections {
		r := &collections[i]
		if !f.Matches(r.Date) {
			continue
		}
		get(r.Salesman).Collections += r.Amount
	}

	rows := make([]SalesmanSummaryRow, 0, len(bySalesman))
	for _, row := range bySalesman {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Salesman < rows[j].Salesman
	})
	return rows
}

// SalesmanSummary trả về một dòng {orders, collections} cho mỗi salesman
// trong kỳ đã lọc.
func (s *ReportService) SalesmanSummary(ctx context.Context, f periods.Filter) ([]SalesmanSummaryRow, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	collections, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}
	return computeSummary(orders, collections, f), nil
}
