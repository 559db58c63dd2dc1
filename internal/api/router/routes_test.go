package router

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	"sales_ops/config"
	authmodels "sales_ops/internal/api/auth/models"
	"sales_ops/internal/api/middleware"
	"sales_ops/internal/global"
)

// stubCRUDHandler trả về 200 cho mọi operation, chỉ dùng để kiểm tra routing.
type stubCRUDHandler struct{}

func (h *stubCRUDHandler) InsertOne(c fiber.Ctx) error          { return c.SendStatus(fiber.StatusOK) }
func (h *stubCRUDHandler) Find(c fiber.Ctx) error               { return c.SendStatus(fiber.StatusOK) }
func (h *stubCRUDHandler) FindOne(c fiber.Ctx) error            { return c.SendStatus(fiber.StatusOK) }
func (h *stubCRUDHandler) FindOneById(c fiber.Ctx) error        { return c.SendStatus(fiber.StatusOK) }
func (h *stubCRUDHandler) FindWithPagination(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
func (h *stubCRUDHandler) UpdateById(c fiber.Ctx) error         { return c.SendStatus(fiber.StatusOK) }
func (h *stubCRUDHandler) DeleteById(c fiber.Ctx) error         { return c.SendStatus(fiber.StatusOK) }
func (h *stubCRUDHandler) CountDocuments(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }
func (h *stubCRUDHandler) DocumentExists(c fiber.Ctx) error     { return c.SendStatus(fiber.StatusOK) }

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	claims := &authmodels.TokenClaims{
		Name: "test-user",
		Role: role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Không ký được token: %v", err)
	}
	return token
}

// Dựng app với layout như router của domain orders: route nghiệp vụ đăng ký
// trước, CRUD với AdminDelete đăng ký sau.
func newTestApp() *fiber.App {
	app := fiber.New()
	v1 := app.Group("/api/v1")
	r := NewRouter(app)

	authMiddleware := middleware.AuthMiddleware("")
	RegisterRouteWithMiddleware(v1, "/orders", "POST", "/:id/confirm-delivery", []fiber.Handler{authMiddleware}, func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	crudConfig := ReadWriteConfig
	crudConfig.AdminDelete = true
	r.RegisterCRUDRoutes(v1, "/orders", &stubCRUDHandler{}, crudConfig)
	return app
}

// Role sales phải gọi được route nghiệp vụ trên cùng prefix với CRUD có
// AdminDelete: middleware admin gắn qua .Use() không được chặn các route
// đăng ký trước nó.
func TestAdminDeleteDoesNotBlockEarlierRoutes(t *testing.T) {
	global.ServerConfig = &config.Configuration{JwtSecret: "test-secret", JwtExpireHours: 1}
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/orders/abc123/confirm-delivery", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "sales"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Sales phải gọi được confirm-delivery, nhận được status %d", resp.StatusCode)
	}
}

func TestAdminDeleteRejectsSalesRole(t *testing.T) {
	global.ServerConfig = &config.Configuration{JwtSecret: "test-secret", JwtExpireHours: 1}
	app := newTestApp()

	req := httptest.NewRequest("DELETE", "/api/v1/orders/abc123", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "sales"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("Sales xóa đơn phải bị chặn 403, nhận được status %d", resp.StatusCode)
	}
}

func TestAdminDeleteAllowsAdminRole(t *testing.T) {
	global.ServerConfig = &config.Configuration{JwtSecret: "test-secret", JwtExpireHours: 1}
	app := newTestApp()

	req := httptest.NewRequest("DELETE", "/api/v1/orders/abc123", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "admin"))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("Admin phải xóa được đơn, nhận được status %d", resp.StatusCode)
	}
}

// Thiếu token phải trả 401, không panic.
func TestMissingTokenRejected(t *testing.T) {
	global.ServerConfig = &config.Configuration{JwtSecret: "test-secret", JwtExpireHours: 1}
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/v1/orders/abc123/confirm-delivery", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Thiếu token phải bị chặn 401, nhận được status %d", resp.StatusCode)
	}
}
