// Package collectionshdl - handler phiếu thu tiền.
package collectionshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "sales_ops/internal/api/auth/models"
	basehdl "sales_ops/internal/api/base/handler"
	collectionsdto "sales_ops/internal/api/collections/dto"
	models "sales_ops/internal/api/collections/models"
	collectionssvc "sales_ops/internal/api/collections/service"
	"sales_ops/internal/periods"
)

// CollectionHandler xử lý các request liên quan đến phiếu thu
type CollectionHandler struct {
	*basehdl.BaseHandler[models.Collection, collectionsdto.CollectionCreateInput, collectionsdto.CollectionUpdateInput]
	collectionService *collectionssvc.CollectionService
}

// NewCollectionHandler tạo instance mới của CollectionHandler
func NewCollectionHandler() (*CollectionHandler, error) {
	collectionService, err := collectionssvc.NewCollectionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create collection service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Collection, collectionsdto.CollectionCreateInput, collectionsdto.CollectionUpdateInput](collectionService)
	return &CollectionHandler{
		BaseHandler:       baseHandler,
		collectionService: collectionService,
	}, nil
}

// callerIdentity đọc danh tính đã được middleware auth gắn vào context.
func callerIdentity(c fiber.Ctx) (name string, role string) {
	name, _ = c.Locals("user_name").(string)
	role, _ = c.Locals("user_role").(string)
	return name, role
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
	if f.Kind == periods.KindSpecificMonth && f.Month == "" {
		f.Month = periods.CurrentMonthKey()
	}
	return f
}

// InsertOne ghi đè CRUD mặc định để gắn salesman và ngày ghi thu
func (h *CollectionHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input collectionsdto.CollectionCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		name, _ := callerIdentity(c)
		record, err := h.collectionService.Create(c.Context(), &input, name)
		h.HandleResponse(c, record, err)
		return nil
	})
}

// Find ghi đè CRUD mặc định: lọc theo kỳ, giới hạn theo salesman với
// role sales, trả kèm tổng tiền của tập đã lọc
func (h *CollectionHandler) Find(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		name, role := callerIdentity(c)
		salesman := ""
		if role != authmodels.RoleAdmin {
			salesman = name
		}
		result, err := h.collectionService.ListByPeriod(c.Context(), periodFilterFromQuery(c), salesman)
		h.HandleResponse(c, result, err)
		return nil
	})
}
