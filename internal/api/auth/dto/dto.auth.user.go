// Package dto - input/output cho domain auth.
package dto

// LoginInput dữ liệu đăng nhập.
type LoginInput struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=sales admin"`
}

// LoginResponse kết quả đăng nhập trả về cho client.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserCreateInput dữ liệu tạo người dùng mới (admin tạo tài khoản cho salesman).
type UserCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=sales admin"`
}

// UserUpdateInput dữ liệu cập nhật người dùng.
type UserUpdateInput struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=sales admin"`
}
