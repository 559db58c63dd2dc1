// Package periods cung cấp bộ lọc thời gian dùng chung cho các màn hình nghiệp vụ
// (danh sách đơn, phiếu thu, báo cáo). Mọi phép so sánh ngày dùng lịch địa phương
// (năm/tháng/ngày theo time.Local), không dùng UTC, vì mốc ngày/tháng được tính
// theo múi giờ của người dùng.
package periods

import (
	"fmt"
	"time"
)

// Kind là loại bộ lọc thời gian
type Kind string

const (
	KindAll           Kind = "all"           // Mọi bản ghi
	KindAsOnDate      Kind = "asOnDate"      // Đúng một ngày
	KindWeekly        Kind = "weekly"        // 7 ngày gần nhất tính từ ngày tham chiếu
	KindMonthly       Kind = "monthly"       // 30 ngày gần nhất, KHÔNG phải tháng dương lịch
	KindSpecificMonth Kind = "specificMonth" // Đúng một tháng dương lịch (YYYY-MM)
)

// Filter mô tả một bộ lọc thời gian.
// RefDate dùng cho asOnDate/weekly/monthly (dạng YYYY-MM-DD),
// Month dùng cho specificMonth (dạng YYYY-MM).
type Filter struct {
	Kind    Kind
	RefDate string
	Month   string
}

// dateLayouts là các định dạng ngày chấp nhận được của field date/timestamp trong dữ liệu.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parse một chuỗi ngày/thời điểm theo các định dạng hỗ trợ.
// Chuỗi không có múi giờ được hiểu theo giờ địa phương.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayString trả về chuỗi ngày địa phương dạng YYYY-MM-DD
func DayString(t time.Time) string {
	t = t.Local()
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// MonthKey trả về chuỗi tháng địa phương dạng YYYY-MM
func MonthKey(t time.Time) string {
	t = t.Local()
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// Today trả về chuỗi ngày hôm nay theo giờ địa phương
func Today() string {
	return DayString(time.Now())
}

// CurrentMonthKey trả về chuỗi tháng hiện tại theo giờ địa phương
func CurrentMonthKey() string {
	return MonthKey(time.Now())
}

// StartOfDay trả về 00:00:00.000 của ngày chứa t (giờ địa phương)
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// EndOfDay trả về 23:59:59.999999999 của ngày chứa t (giờ địa phương)
func EndOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.Local)
}

// Matches kiểm tra một bản ghi có field ngày dateStr có nằm trong bộ lọc hay không.
// Bản ghi có ngày rỗng hoặc không parse được bị loại ở mọi loại lọc trừ KindAll.
func (f Filter) Matches(dateStr string) bool {
	if f.Kind == "" || f.Kind == KindAll {
		return true
	}

	recordDate, ok := ParseDate(dateStr)
	if !ok {
		return false
	}

	switch f.Kind {
	case KindAsOnDate:
		return DayString(recordDate) == f.RefDate

	case KindWeekly:
		return f.inLookbackWindow(recordDate, 7)

	case KindMonthly:
		// Cửa sổ lùi 30 ngày, không phải tháng dương lịch
		return f.inLookbackWindow(recordDate, 30)

	case KindSpecificMonth:
		return MonthKey(recordDate) == f.Month
	}

	return false
}

// inLookbackWindow kiểm tra recordDate thuộc [đầu ngày (ref − days), cuối ngày ref].
func (f Filter) inLookbackWindow(recordDate time.Time, days int) bool {
	ref, ok := ParseDate(f.RefDate)
	if !ok {
		return false
	}
	lower := StartOfDay(ref.AddDate(0, 0, -days))
	upper := EndOfDay(ref)
	return !recordDate.Before(lower) && !recordDate.After(upper)
}
