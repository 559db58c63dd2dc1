// Package ordershdl - handler đơn hàng.
package ordershdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "sales_ops/internal/api/auth/models"
	basehdl "sales_ops/internal/api/base/handler"
	ordersdto "sales_ops/internal/api/orders/dto"
	models "sales_ops/internal/api/orders/models"
	orderssvc "sales_ops/internal/api/orders/service"
	"sales_ops/internal/periods"
)

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, ordersdto.OrderCreateInput, ordersdto.OrderUpdateInput]
	orderService *orderssvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := orderssvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, ordersdto.OrderCreateInput, ordersdto.OrderUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
	}, nil
}

// callerIdentity đọc danh tính đã được middleware auth gắn vào context.
func callerIdentity(c fiber.Ctx) (name string, role string) {
	name, _ = c.Locals("user_name").(string)
	role, _ = c.Locals("user_role").(string)
	return name, role
}

// periodFilterFromQuery dựng bộ lọc thời gian từ query:
// filter=all|asOnDate|weekly|monthly|specificMonth, date=YYYY-MM-DD, month=YYYY-MM.
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
	if f.Kind == periods.KindSpecificMonth && f.Month == "" {
		f.Month = periods.CurrentMonthKey()
	}
	return f
}

// InsertOne ghi đè CRUD mặc định để gắn salesman và tính tổng đơn
func (h *OrderHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input ordersdto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		name, _ := callerIdentity(c)
		order, err := h.orderService.Create(c.Context(), &input, name)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// Find ghi đè CRUD mặc định: lọc theo kỳ và giới hạn theo salesman với role sales
func (h *OrderHandler) Find(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		name, role := callerIdentity(c)
		salesman := ""
		if role != authmodels.RoleAdmin {
			salesman = name
		}
		orders, err := h.orderService.ListByPeriod(c.Context(), periodFilterFromQuery(c), salesman)
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// UpdateById ghi đè CRUD mặc định để tính lại tổng khi đổi dòng hàng
func (h *OrderHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.ParseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input ordersdto.OrderUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		order, err := h.orderService.Update(c.Context(), id, &input)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleConfirmDelivery xác nhận giao hàng (giao đủ hoặc giao một phần)
func (h *OrderHandler) HandleConfirmDelivery(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.ParseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input ordersdto.ConfirmDeliveryInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		order, err := h.orderService.ConfirmDelivery(c.Context(), id, &input)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleMarkPending đưa đơn về trạng thái pending
func (h *OrderHandler) HandleMarkPending(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.ParseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		order, err := h.orderService.MarkPending(c.Context(), id)
		h.HandleResponse(c, order, err)
		return nil
	})
}
