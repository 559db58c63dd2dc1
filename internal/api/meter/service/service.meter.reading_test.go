package metersvc

import (
	"testing"

	models "sales_ops/internal/api/meter/models"
)

func TestDeriveAllowanceClosedJourney(t *testing.T) {
	record := &models.MeterReading{
		StartReading: 100,
		EndReading:   150,
		EndTime:      "2024-05-10T18:30:00+07:00",
	}
	distance, allowance := DeriveAllowance(record, 2)
	if distance != 50 {
		t.Errorf("Quãng đường phải là 50, nhận được %g", distance)
	}
	if allowance != 100 {
		t.Errorf("Công tác phí đơn giá 2 phải là 100, nhận được %g", allowance)
	}
}

func TestDeriveAllowanceOpenJourney(t *testing.T) {
	record := &models.MeterReading{StartReading: 100}
	distance, allowance := DeriveAllowance(record, 2)
	if distance != 0 || allowance != 0 {
		t.Errorf("Chuyến còn mở phải có quãng đường và công tác phí bằng 0, nhận được %g và %g", distance, allowance)
	}
}

func TestDeriveAllowanceCustomRate(t *testing.T) {
	record := &models.MeterReading{
		StartReading: 10,
		EndReading:   25,
		EndTime:      "2024-05-10T18:30:00+07:00",
	}
	_, allowance := DeriveAllowance(record, 3)
	if allowance != 45 {
		t.Errorf("Công tác phí đơn giá 3 cho 15 đơn vị phải là 45, nhận được %g", allowance)
	}
}

func TestMeterReadingIsOpen(t *testing.T) {
	record := &models.MeterReading{StartReading: 100}
	if !record.IsOpen() {
		t.Errorf("Bản ghi chưa có endTime phải là chuyến mở")
	}
	record.EndTime = "2024-05-10T18:30:00+07:00"
	if record.IsOpen() {
		t.Errorf("Bản ghi đã có endTime không còn là chuyến mở")
	}
}
