// Package reportsvc - số dư công nợ khách hàng.
package reportsvc

import (
	"context"
	"sort"

	collectionsModels "sales_ops/internal/api/collections/models"
	ordersModels "sales_ops/internal/api/orders/models"
)

// CustomerBalanceRow số dư của một khách hàng.
// Balance = tổng giá trị đơn không hủy − tổng tiền đã thu, tính trên
// toàn bộ dữ liệu không lọc theo kỳ.
type CustomerBalanceRow struct {
	CustomerName     string  `json:"customerName"`
	TotalOrders      float64 `json:"totalOrders"`
	TotalCollections float64 `json:"totalCollections"`
	Balance          float64 `json:"balance"`
	IsFullyPaid      bool    `json:"isFullyPaid"`
}

// computeBalances gom số dư theo khách trên snapshot đầy đủ.
// customer khác rỗng chỉ trả về khách đó (vẫn trả về dòng số 0 nếu
// khách không có dữ liệu).
func computeBalances(orders []ordersModels.Order, collections []collectionsModels.Collection, customer string) []CustomerBalanceRow {
	byCustomer := map[string]*CustomerBalanceRow{}
	get := func(name string) *CustomerBalanceRow {
		row, ok := byCustomer[name]
		if !ok {
			row = &CustomerBalanceRow{CustomerName: name}
			byCustomer[name] = row
		}
		return row
	}

	for i := range orders {
		o := &orders[i]
		if o.Status == "cancelled" {
			continue
		}
		get(o.CustomerName).TotalOrders += o.EffectiveTotal()
	}
	for i := range collections {
		get(collections[i].CustomerName).TotalCollections += collections[i].Amount
	}

	if customer != "" {
		row := get(customer)
		row.Balance = row.TotalOrders - row.TotalCollections
		row.IsFullyPaid = row.Balance <= 0
		return []CustomerBalanceRow{*row}
	}

	rows := make([]CustomerBalanceRow, 0, len(byCustomer))
	for _, row := range byCustomer {
		row.Balance = row.TotalOrders - row.TotalCollections
		row.IsFullyPaid = row.Balance <= 0
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CustomerName < rows[j].CustomerName
	})
	return rows
}

// CustomerBalance tính số dư của một khách hoặc của mọi khách khi
// customer rỗng.
func (s *ReportService) CustomerBalance(ctx context.Context, customer string) ([]CustomerBalanceRow, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	collections, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}
	return computeBalances(orders, collections, customer), nil
}
