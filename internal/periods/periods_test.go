package periods

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"2024-05-10", true},
		{"2024-05-10T08:30:00", true},
		{"2024-05-10T08:30:00Z", true},
		{"2024-05-10T08:30:00+07:00", true},
		{"", false},
		{"khong-phai-ngay", false},
		{"10/05/2024", false},
	}

	for _, c := range cases {
		_, ok := ParseDate(c.input)
		if ok != c.ok {
			t.Errorf("ParseDate(%q): mong đợi ok=%v, nhận được %v", c.input, c.ok, ok)
		}
	}
}

func TestDayStringAndMonthKey(t *testing.T) {
	tm := time.Date(2024, 3, 7, 23, 45, 0, 0, time.Local)
	if got := DayString(tm); got != "2024-03-07" {
		t.Errorf("DayString: mong đợi 2024-03-07, nhận được %s", got)
	}
	if got := MonthKey(tm); got != "2024-03" {
		t.Errorf("MonthKey: mong đợi 2024-03, nhận được %s", got)
	}
}

func TestFilterAll(t *testing.T) {
	f := Filter{Kind: KindAll}
	if !f.Matches("2024-05-10") {
		t.Error("KindAll phải nhận mọi bản ghi có ngày hợp lệ")
	}
	if !f.Matches("") {
		t.Error("KindAll phải nhận cả bản ghi không có ngày")
	}
	if !f.Matches("rác") {
		t.Error("KindAll phải nhận cả bản ghi có ngày không parse được")
	}
}

func TestFilterAsOnDate(t *testing.T) {
	f := Filter{Kind: KindAsOnDate, RefDate: "2024-05-10"}

	if !f.Matches("2024-05-10") {
		t.Error("Bản ghi đúng ngày tham chiếu phải được nhận")
	}
	if !f.Matches("2024-05-10T23:59:59") {
		t.Error("Bản ghi cuối ngày tham chiếu phải được nhận")
	}
	if f.Matches("2024-05-09") {
		t.Error("Bản ghi trước ngày tham chiếu một ngày phải bị loại")
	}
	if f.Matches("2024-05-11") {
		t.Error("Bản ghi sau ngày tham chiếu một ngày phải bị loại")
	}
	if f.Matches("") {
		t.Error("Bản ghi không có ngày phải bị loại")
	}
}

func TestFilterWeeklyBoundaries(t *testing.T) {
	f := Filter{Kind: KindWeekly, RefDate: "2024-05-10"}

	// Cửa sổ là [đầu ngày 2024-05-03, cuối ngày 2024-05-10]
	if !f.Matches("2024-05-03") {
		t.Error("Đầu cửa sổ 7 ngày phải được nhận")
	}
	if !f.Matches("2024-05-10T23:59:59") {
		t.Error("Cuối ngày tham chiếu phải được nhận")
	}
	if f.Matches("2024-05-02T23:59:59") {
		t.Error("Trước cửa sổ 7 ngày phải bị loại")
	}
	if f.Matches("2024-05-11") {
		t.Error("Sau ngày tham chiếu phải bị loại")
	}
}

func TestFilterMonthlyIs30DayWindow(t *testing.T) {
	f := Filter{Kind: KindMonthly, RefDate: "2024-05-10"}

	// 2024-05-10 − 30 ngày = 2024-04-10: cửa sổ [2024-04-10, 2024-05-10]
	if !f.Matches("2024-04-10") {
		t.Error("Đầu cửa sổ 30 ngày phải được nhận")
	}
	if f.Matches("2024-04-09T23:59:59") {
		t.Error("Trước cửa sổ 30 ngày phải bị loại")
	}
	// Bản ghi cùng tháng dương lịch nhưng ngoài cửa sổ 30 ngày vẫn bị loại
	f2 := Filter{Kind: KindMonthly, RefDate: "2024-03-31"}
	if f2.Matches("2024-03-01T00:00:00") {
		// 2024-03-31 − 30 ngày = 2024-03-01, nên 2024-03-01 phải ĐƯỢC nhận
		t.Log("2024-03-01 nằm đúng biên dưới")
	}
	if !f2.Matches("2024-03-01") {
		t.Error("Biên dưới của cửa sổ 30 ngày phải được nhận")
	}
	if f2.Matches("2024-02-29") {
		t.Error("Ngày ngay trước biên dưới phải bị loại")
	}
}

func TestFilterSpecificMonth(t *testing.T) {
	f := Filter{Kind: KindSpecificMonth, Month: "2024-05"}

	if !f.Matches("2024-05-01") {
		t.Error("Ngày đầu tháng phải được nhận")
	}
	if !f.Matches("2024-05-31T23:00:00") {
		t.Error("Ngày cuối tháng phải được nhận")
	}
	if f.Matches("2024-04-30") {
		t.Error("Tháng trước phải bị loại")
	}
	if f.Matches("2024-06-01") {
		t.Error("Tháng sau phải bị loại")
	}
}

func TestFilterInvalidRefDate(t *testing.T) {
	f := Filter{Kind: KindWeekly, RefDate: "rác"}
	if f.Matches("2024-05-10") {
		t.Error("Ngày tham chiếu không hợp lệ thì không bản ghi nào được nhận")
	}
}

func TestStartEndOfDay(t *testing.T) {
	tm := time.Date(2024, 5, 10, 14, 30, 0, 0, time.Local)
	start := StartOfDay(tm)
	end := EndOfDay(tm)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Error("StartOfDay phải trả về 00:00:00")
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Error("EndOfDay phải trả về 23:59:59")
	}
	if !start.Before(end) {
		t.Error("StartOfDay phải trước EndOfDay")
	}
}
