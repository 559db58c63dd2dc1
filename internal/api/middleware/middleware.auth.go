// Package middleware - xác thực JWT và kiểm tra role.
package middleware

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authmodels "sales_ops/internal/api/auth/models"
	"sales_ops/internal/common"
	"sales_ops/internal/global"
)

// AuthMiddleware xác thực JWT từ header Authorization và gắn danh tính vào context.
// requireRole = "" chỉ yêu cầu đăng nhập, requireRole = "admin" yêu cầu role admin.
// Sau khi xác thực, handler đọc danh tính qua c.Locals("user_name") và c.Locals("user_role").
func AuthMiddleware(requireRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logrus.WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Thiếu header Authorization")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			logrus.WithFields(logrus.Fields{
				"path": c.Path(),
			}).Warn("❌ [AUTH] Header Authorization không đúng định dạng Bearer")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims := &authmodels.TokenClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})
		if err != nil {
			if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
				logrus.WithFields(logrus.Fields{
					"path": c.Path(),
				}).Warn("❌ [AUTH] Token đã hết hạn")
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			logrus.WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token không hợp lệ")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		if !token.Valid || claims.Name == "" {
			logrus.WithFields(logrus.Fields{
				"path": c.Path(),
			}).Warn("❌ [AUTH] Token không hợp lệ hoặc thiếu danh tính")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if requireRole != "" && claims.Role != requireRole {
			logrus.WithFields(logrus.Fields{
				"path":     c.Path(),
				"user":     claims.Name,
				"role":     claims.Role,
				"required": requireRole,
			}).Warn("❌ [AUTH] Không đủ quyền truy cập")
			HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}

		c.Locals("user_name", claims.Name)
		c.Locals("user_role", claims.Role)
		return c.Next()
	}
}
