package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var dayStringRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var monthKeyRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("day_string", validateDayString)
	_ = Validate.RegisterValidation("month_key", validateMonthKey)
}

// validateNoXSS kiểm tra XSS trong các field văn bản tự do (tên khách, địa điểm)
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateDayString kiểm tra chuỗi ngày dạng YYYY-MM-DD (field date của phiếu thu, công tơ mét)
func validateDayString(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // optional, dùng kèm omitempty
	}
	return dayStringRegex.MatchString(value)
}

// validateMonthKey kiểm tra chuỗi tháng dạng YYYY-MM (filter specificMonth, báo cáo theo tháng)
func validateMonthKey(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return monthKeyRegex.MatchString(value)
}
