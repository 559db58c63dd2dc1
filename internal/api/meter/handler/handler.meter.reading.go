// Package meterhdl - handler nhật ký công tơ mét.
package meterhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "sales_ops/internal/api/auth/models"
	basehdl "sales_ops/internal/api/base/handler"
	meterdto "sales_ops/internal/api/meter/dto"
	models "sales_ops/internal/api/meter/models"
	metersvc "sales_ops/internal/api/meter/service"
)

// MeterHandler xử lý các request liên quan đến nhật ký công tơ mét
type MeterHandler struct {
	*basehdl.BaseHandler[models.MeterReading, meterdto.StartJourneyInput, meterdto.EndJourneyInput]
	meterService *metersvc.MeterService
}

// NewMeterHandler tạo instance mới của MeterHandler
func NewMeterHandler() (*MeterHandler, error) {
	meterService, err := metersvc.NewMeterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create meter service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.MeterReading, meterdto.StartJourneyInput, meterdto.EndJourneyInput](meterService)
	return &MeterHandler{
		BaseHandler:  baseHandler,
		meterService: meterService,
	}, nil
}

// callerIdentity đọc danh tính đã được middleware auth gắn vào context.
func callerIdentity(c fiber.Ctx) (name string, role string) {
	name, _ = c.Locals("user_name").(string)
	role, _ = c.Locals("user_role").(string)
	return name, role
}

// HandleStartJourney mở chuyến đi trong ngày (chốt số đầu)
func (h *MeterHandler) HandleStartJourney(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input meterdto.StartJourneyInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		name, _ := callerIdentity(c)
		record, err := h.meterService.StartJourney(c.Context(), name, &input)
		h.HandleResponse(c, record, err)
		return nil
	})
}

// HandleEndJourney đóng chuyến đi trong ngày (chốt số cuối)
func (h *MeterHandler) HandleEndJourney(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input meterdto.EndJourneyInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		name, _ := callerIdentity(c)
		record, err := h.meterService.EndJourney(c.Context(), name, &input)
		h.HandleResponse(c, record, err)
		return nil
	})
}

// Find ghi đè CRUD mặc định: lọc theo tháng (month=YYYY-MM|all) và giới
// hạn theo salesman với role sales
func (h *MeterHandler) Find(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		name, role := callerIdentity(c)
		salesman := ""
		if role != authmodels.RoleAdmin {
			salesman = name
		}
		month := c.Query("month", "all")
		result, err := h.meterService.ListByMonth(c.Context(), month, salesman)
		h.HandleResponse(c, result, err)
		return nil
	})
}
