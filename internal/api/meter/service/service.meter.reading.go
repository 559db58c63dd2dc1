// Package metersvc - service nhật ký công tơ mét.
package metersvc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "sales_ops/internal/api/base/service"
	meterdto "sales_ops/internal/api/meter/dto"
	models "sales_ops/internal/api/meter/models"
	"sales_ops/internal/common"
	"sales_ops/internal/global"
	"sales_ops/internal/periods"
)

// MeterService là cấu trúc chứa các phương thức liên quan đến nhật ký công tơ mét
type MeterService struct {
	*basesvc.BaseServiceMongoImpl[models.MeterReading]
}

// NewMeterService tạo mới MeterService
func NewMeterService() (*MeterService, error) {
	meterCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MeterReadings)
	if !exist {
		return nil, fmt.Errorf("failed to get meter readings collection: %v", common.ErrNotFound)
	}
	return &MeterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.MeterReading](meterCollection),
	}, nil
}

// allowanceRate đơn giá công tác phí theo cấu hình, mặc định 2.
func allowanceRate() float64 {
	if global.ServerConfig != nil && global.ServerConfig.AllowanceRate > 0 {
		return global.ServerConfig.AllowanceRate
	}
	return 2
}

// DeriveAllowance tính quãng đường và công tác phí của một chuyến đã đóng.
func DeriveAllowance(m *models.MeterReading, rate float64) (distance float64, allowance float64) {
	if m.IsOpen() {
		return 0, 0
	}
	distance = m.EndReading - m.StartReading
	return distance, distance * rate
}

// StartJourney mở chuyến đi trong ngày cho salesman.
// Từ chối khi hôm nay đã có bản ghi (mở hay đã đóng đều không mở lại).
func (s *MeterService) StartJourney(ctx context.Context, salesman string, input *meterdto.StartJourneyInput) (models.MeterReading, error) {
	var zero models.MeterReading
	if input.StartReading <= 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Số công tơ đầu ngày phải lớn hơn 0", common.StatusBadRequest, nil)
	}
	today := periods.Today()
	_, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"salesman": salesman, "date": today}, nil)
	if err == nil {
		return zero, common.NewError(common.ErrCodeBusinessState, "Hôm nay đã có chuyến đi được ghi nhận", common.StatusConflict, nil)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	now := time.Now().Format(time.RFC3339)
	record := models.MeterReading{
		Salesman:      salesman,
		Date:          today,
		StartReading:  input.StartReading,
		StartLocation: input.StartLocation,
		StartTime:     now,
		Timestamp:     now,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, record)
}

// EndJourney đóng chuyến đi đang mở của salesman trong ngày.
// Yêu cầu số cuối lớn hơn số đầu.
func (s *MeterService) EndJourney(ctx context.Context, salesman string, input *meterdto.EndJourneyInput) (models.MeterReading, error) {
	var zero models.MeterReading
	today := periods.Today()
	record, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"salesman": salesman, "date": today}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.NewError(common.ErrCodeBusinessState, "Hôm nay chưa có chuyến đi nào được mở", common.StatusBadRequest, nil)
		}
		return zero, err
	}
	if !record.IsOpen() {
		return zero, common.NewError(common.ErrCodeBusinessState, "Chuyến đi hôm nay đã được chốt số", common.StatusConflict, nil)
	}
	if input.EndReading <= record.StartReading {
		return zero, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Số công tơ cuối ngày phải lớn hơn số đầu ngày (%g)", record.StartReading), common.StatusBadRequest, nil)
	}

	updateData := &basesvc.UpdateData{Set: map[string]interface{}{
		"endReading":  input.EndReading,
		"endLocation": input.EndLocation,
		"endTime":     time.Now().Format(time.RFC3339),
	}}
	return s.BaseServiceMongoImpl.UpdateById(ctx, record.ID, updateData)
}

// ListByMonth trả về nhật ký theo tháng (YYYY-MM, "all" = mọi tháng, khóa
// tháng lấy từ startTime theo giờ địa phương) kèm quãng đường và công tác
// phí dẫn xuất. salesman khác rỗng giới hạn theo người đi.
func (s *MeterService) ListByMonth(ctx context.Context, month string, salesman string) (*meterdto.MeterReadingListResult, error) {
	filter := bson.M{}
	if salesman != "" {
		filter["salesman"] = salesman
	}
	records, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	rate := allowanceRate()
	result := &meterdto.MeterReadingListResult{Items: []meterdto.MeterReadingRow{}}
	for _, r := range records {
		if month != "" && month != "all" {
			t, ok := periods.ParseDate(r.StartTime)
			if !ok || periods.MonthKey(t) != month {
				continue
			}
		}
		distance, allowance := DeriveAllowance(&r, rate)
		result.Items = append(result.Items, meterdto.MeterReadingRow{
			MeterReading: r,
			Distance:     distance,
			Allowance:    allowance,
		})
		result.TotalDistance += distance
		result.TotalAllowance += allowance
	}
	sort.Slice(result.Items, func(i, j int) bool {
		return result.Items[i].Date > result.Items[j].Date
	})
	return result, nil
}
