// Package collectionssvc - service phiếu thu tiền.
package collectionssvc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "sales_ops/internal/api/base/service"
	collectionsdto "sales_ops/internal/api/collections/dto"
	models "sales_ops/internal/api/collections/models"
	"sales_ops/internal/common"
	"sales_ops/internal/global"
	"sales_ops/internal/periods"
)

// CollectionService là cấu trúc chứa các phương thức liên quan đến phiếu thu
type CollectionService struct {
	*basesvc.BaseServiceMongoImpl[models.Collection]
}

// NewCollectionService tạo mới CollectionService
func NewCollectionService() (*CollectionService, error) {
	collectionCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Collections)
	if !exist {
		return nil, fmt.Errorf("failed to get collections collection: %v", common.ErrNotFound)
	}
	return &CollectionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Collection](collectionCol),
	}, nil
}

// Create ghi một phiếu thu mới, gắn salesman của người tạo.
// Ngày ghi thu do caller cung cấp, mặc định là hôm nay.
func (s *CollectionService) Create(ctx context.Context, input *collectionsdto.CollectionCreateInput, salesman string) (models.Collection, error) {
	var zero models.Collection
	if strings.TrimSpace(input.CustomerName) == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, "Phiếu thu phải có tên khách", common.StatusBadRequest, nil)
	}
	if input.Amount < 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Số tiền thu không được âm", common.StatusBadRequest, nil)
	}
	date := input.Date
	if date == "" {
		date = periods.Today()
	}
	record := models.Collection{
		CustomerName: input.CustomerName,
		Amount:       input.Amount,
		Date:         date,
		Salesman:     salesman,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, record)
}

// ListByPeriod trả về phiếu thu theo bộ lọc thời gian trên date kèm
// tổng tiền của tập đã lọc. salesman khác rỗng giới hạn theo người thu.
func (s *CollectionService) ListByPeriod(ctx context.Context, f periods.Filter, salesman string) (*collectionsdto.CollectionListResult, error) {
	filter := bson.M{}
	if salesman != "" {
		filter["salesman"] = salesman
	}
	records, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	matched := make([]models.Collection, 0, len(records))
	var totalAmount float64
	for _, r := range records {
		if f.Matches(r.Date) {
			matched = append(matched, r)
			totalAmount += r.Amount
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date > matched[j].Date
	})
	return &collectionsdto.CollectionListResult{Items: matched, TotalAmount: totalAmount}, nil
}
