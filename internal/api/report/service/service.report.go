// Package reportsvc - Aggregation Engine: số dư khách hàng, tổng hợp theo
// salesman, sổ chi tiết, hàng chờ giao, dashboard.
//
// Mỗi request đọc snapshot đầy đủ từ store rồi tính toán trong bộ nhớ.
// Quét toàn bộ O(n) là lựa chọn thiết kế có chủ đích: số dư khách phải
// được tính trên tập đơn KHÔNG lọc, bất kể màn hình đang lọc theo kỳ nào.
package reportsvc

import (
	"context"
	"fmt"

	basesvc "sales_ops/internal/api/base/service"
	collectionsModels "sales_ops/internal/api/collections/models"
	ordersModels "sales_ops/internal/api/orders/models"
	"sales_ops/internal/common"
	"sales_ops/internal/global"
)

// UnknownSalesman nhãn thay thế khi đơn không có salesman.
const UnknownSalesman = "Unknown"

// ReportService là cấu trúc chứa các phương thức báo cáo tổng hợp
type ReportService struct {
	orderService      *basesvc.BaseServiceMongoImpl[ordersModels.Order]
	collectionService *basesvc.BaseServiceMongoImpl[collectionsModels.Collection]
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	collectionCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Collections)
	if !exist {
		return nil, fmt.Errorf("failed to get collections collection: %v", common.ErrNotFound)
	}
	return &ReportService{
		orderService:      basesvc.NewBaseServiceMongo[ordersModels.Order](orderCollection),
		collectionService: basesvc.NewBaseServiceMongo[collectionsModels.Collection](collectionCol),
	}, nil
}

// loadOrders đọc snapshot đầy đủ tập đơn hàng.
func (s *ReportService) loadOrders(ctx context.Context) ([]ordersModels.Order, error) {
	return s.orderService.Find(ctx, nil, nil)
}

// loadCollections đọc snapshot đầy đủ tập phiếu thu.
func (s *ReportService) loadCollections(ctx context.Context) ([]collectionsModels.Collection, error) {
	return s.collectionService.Find(ctx, nil, nil)
}

// salesmanLabel trả về nhãn salesman, rỗng thay bằng Unknown.
func salesmanLabel(salesman string) string {
	if salesman == "" {
		return UnknownSalesman
	}
	return salesman
}
