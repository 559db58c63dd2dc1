// Package authhdl - handler xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	authdto "sales_ops/internal/api/auth/dto"
	models "sales_ops/internal/api/auth/models"
	authsvc "sales_ops/internal/api/auth/service"
	basehdl "sales_ops/internal/api/base/handler"
	"sales_ops/internal/common"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// HandleLogin xử lý đăng nhập, trả về JWT khi thành công
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		result, err := h.userService.Login(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetProfile lấy thông tin người dùng đang đăng nhập
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		userName, _ := c.Locals("user_name").(string)
		if userName == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}
		user, err := h.userService.BaseServiceMongoImpl.FindOne(c.Context(), bson.M{"name": userName}, nil)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// InsertOne ghi đè CRUD mặc định để băm mật khẩu trước khi lưu
func (h *UserHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.CreateUser(c.Context(), &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// UpdateById ghi đè CRUD mặc định, băm lại mật khẩu khi đổi
func (h *UserHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		id, err := h.ParseObjectIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input authdto.UserUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.UpdateUser(c.Context(), id, &input)
		h.HandleResponse(c, user, err)
		return nil
	})
}
