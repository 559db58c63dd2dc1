// Package reporthdl - handler các báo cáo tổng hợp.
package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "sales_ops/internal/api/base/handler"
	reportsvc "sales_ops/internal/api/report/service"
	"sales_ops/internal/common"
	"sales_ops/internal/periods"
)

// ReportHandler xử lý các request báo cáo
type ReportHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	reportService *reportsvc.ReportService
}

// NewReportHandler tạo instance mới của ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	return &ReportHandler{
		BaseHandler:   basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		reportService: reportService,
	}, nil
}

// periodFilterFromQuery dựng bộ lọc thời gian từ query của request.
func periodFilterFromQuery(c fiber.Ctx) periods.Filter {
	f := periods.Filter{
		Kind:    periods.Kind(c.Query("filter", string(periods.KindAll))),
		RefDate: c.Query("date"),
		Month:   c.Query("month"),
	}
	if f.Kind == periods.KindAsOnDate || f.Kind == periods.KindWeekly || f.Kind == periods.KindMonthly {
		if f.RefDate == "" {
			f.RefDate = periods.Today()
		}
	}
	// Chỉ truyền month (không truyền filter) được hiểu là lọc theo tháng đó
	if f.Kind == periods.KindAll && f.Month != "" {
		f.Kind = periods.KindSpecificMonth
	}
	if f.Kind == periods.KindSpecificMonth && f.Month == "" {
		f.Month = periods.CurrentMonthKey()
	}
	return f
}

// HandleBalance số dư công nợ của một khách (?customer=) hoặc mọi khách
func (h *ReportHandler) HandleBalance(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		rows, err := h.reportService.CustomerBalance(c.Context(), c.Query("customer"))
		h.HandleResponse(c, rows, err)
		return nil
	})
}

// HandleSummary tổng hợp doanh số và tiền thu theo salesman trong kỳ
func (h *ReportHandler) HandleSummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		rows, err := h.reportService.SalesmanSummary(c.Context(), periodFilterFromQuery(c))
		h.HandleResponse(c, rows, err)
		return nil
	})
}

// HandleLedger sổ chi tiết của một salesman trong một tháng
func (h *ReportHandler) HandleLedger(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		salesman := c.Query("salesman")
		if salesman == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số salesman", common.StatusBadRequest, nil))
			return nil
		}
		month := c.Query("month")
		if month == "" {
			month = periods.CurrentMonthKey()
		}
		result, err := h.reportService.SalesmanLedger(c.Context(), salesman, month)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandlePendingItems bảng hàng chờ giao theo tháng, lọc theo status và salesman
func (h *ReportHandler) HandlePendingItems(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.reportService.PendingItems(c.Context(), c.Query("month"), c.Query("status"), c.Query("salesman"))
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleDashboard số liệu tổng quan của màn hình dashboard
func (h *ReportHandler) HandleDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.reportService.Dashboard(c.Context(), periodFilterFromQuery(c))
		h.HandleResponse(c, result, err)
		return nil
	})
}
