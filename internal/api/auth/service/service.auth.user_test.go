package authsvc

import (
	"testing"

	"github.com/dgrijalva/jwt-go"

	models "sales_ops/internal/api/auth/models"
	"sales_ops/config"
	"sales_ops/internal/global"
)

func TestHashPassword(t *testing.T) {
	h1 := hashPassword("secret123", "salt-a")
	h2 := hashPassword("secret123", "salt-a")
	if h1 != h2 {
		t.Errorf("Băm cùng mật khẩu cùng salt phải cho kết quả giống nhau")
	}
	if hashPassword("secret123", "salt-b") == h1 {
		t.Errorf("Salt khác nhau phải cho hash khác nhau")
	}
	if hashPassword("secret124", "salt-a") == h1 {
		t.Errorf("Mật khẩu khác nhau phải cho hash khác nhau")
	}
	if len(h1) != 64 {
		t.Errorf("Hash SHA-256 hex phải dài 64 ký tự, nhận được %d", len(h1))
	}
}

func TestNewSalt(t *testing.T) {
	s1, err := newSalt()
	if err != nil {
		t.Fatalf("newSalt trả về lỗi: %v", err)
	}
	s2, err := newSalt()
	if err != nil {
		t.Fatalf("newSalt trả về lỗi: %v", err)
	}
	if s1 == s2 {
		t.Errorf("Hai salt liên tiếp không được trùng nhau")
	}
	if len(s1) != 32 {
		t.Errorf("Salt hex phải dài 32 ký tự, nhận được %d", len(s1))
	}
}

func TestIssueToken(t *testing.T) {
	global.ServerConfig = &config.Configuration{JwtSecret: "test-secret", JwtExpireHours: 1}
	svc := &UserService{}
	user := &models.User{Name: "nguyen-van-a", Role: models.RoleSales}

	signed, err := svc.issueToken(user)
	if err != nil {
		t.Fatalf("issueToken trả về lỗi: %v", err)
	}

	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("Token phát hành không parse được: %v", err)
	}
	if claims.Name != "nguyen-van-a" {
		t.Errorf("Claims name sai: %s", claims.Name)
	}
	if claims.Role != models.RoleSales {
		t.Errorf("Claims role sai: %s", claims.Role)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Errorf("Token phải có thời hạn lớn hơn thời điểm phát hành")
	}
}
