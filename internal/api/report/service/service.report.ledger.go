// Package reportsvc - sổ chi tiết theo salesman và tháng.
package reportsvc

import (
	"context"
	"sort"

	collectionsModels "sales_ops/internal/api/collections/models"
	ordersModels "sales_ops/internal/api/orders/models"
	"sales_ops/internal/periods"
)

// LedgerRow một dòng trong sổ chi tiết: hoặc dòng đơn hàng (orderAmount,
// deliveredAmount) hoặc dòng phiếu thu (collectionAmount).
type LedgerRow struct {
	Date             string  `json:"date"`
	Type             string  `json:"type"` // order | collection
	CustomerName     string  `json:"customerName"`
	OrderAmount      float64 `json:"orderAmount,omitempty"`
	DeliveredAmount  float64 `json:"deliveredAmount,omitempty"`
	CollectionAmount float64 `json:"collectionAmount,omitempty"`
}

// LedgerResult sổ chi tiết kèm tổng các cột.
type LedgerResult struct {
	Salesman         string      `json:"salesman"`
	Month            string      `json:"month"`
	Rows             []LedgerRow `json:"rows"`
	TotalOrders      float64     `json:"totalOrders"`
	TotalDelivered   float64     `json:"totalDelivered"`
	TotalCollections float64     `json:"totalCollections"`
}

// computeLedger dựng sổ chi tiết của một salesman trong một tháng,
// các dòng sắp xếp tăng dần theo ngày.
func computeLedger(orders []ordersModels.Order, collections []collectionsModels.Collection, salesman string, month string) *LedgerResult {
	f := periods.Filter{Kind: periods.KindSpecificMonth, Month: month}
	result := &LedgerResult{Salesman: salesman, Month: month, Rows: []LedgerRow{}}

	for i := range orders {
		o := &orders[i]
		if o.Salesman != salesman || !f.Matches(o.Timestamp) {
			continue
		}
		amount := o.EffectiveTotal()
		delivered := 0.0
		if o.EffectiveStatus() == ordersModels.StatusDelivered {
			delivered = amount
		}
		date := o.Timestamp
		if t, ok := periods.ParseDate(o.Timestamp); ok {
			date = periods.DayString(t)
		}
		result.Rows = append(result.Rows, LedgerRow{
			Date:            date,
			Type:            "order",
			CustomerName:    o.CustomerName,
			OrderAmount:     amount,
			DeliveredAmount: delivered,
		})
		result.TotalOrders += amount
		result.TotalDelivered += delivered
	}

	for i := range collections {
		r := &collections[i]
		if r.Salesman != salesman || !f.Matches(r.Date) {
			continue
		}
		result.Rows = append(result.Rows, LedgerRow{
			Date:             r.Date,
			Type:             "collection",
			CustomerName:     r.CustomerName,
			CollectionAmount: r.Amount,
		})
		result.TotalCollections += r.Amount
	}

	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i].Date < result.Rows[j].Date
	})
	return result
}

// SalesmanLedger trả về sổ chi tiết theo thời gian của một salesman
// trong một tháng (YYYY-MM).
func (s *ReportService) SalesmanLedger(ctx context.Context, salesman string, month string) (*LedgerResult, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	collections, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}
	return computeLedger(orders, collections, salesman, month), nil
}
