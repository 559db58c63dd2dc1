// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "sales_ops/internal/api/auth/dto"
	models "sales_ops/internal/api/auth/models"
	basesvc "sales_ops/internal/api/base/service"
	"sales_ops/internal/common"
	"sales_ops/internal/global"
	"sales_ops/internal/periods"
	"sales_ops/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// newSalt sinh salt ngẫu nhiên cho mật khẩu.
func newSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể sinh salt", common.StatusInternalServerError, err)
	}
	return hex.EncodeToString(buf), nil
}

// hashPassword băm mật khẩu kèm salt bằng SHA-256.
func hashPassword(password string, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// CreateUser tạo người dùng mới với mật khẩu đã băm. Tên người dùng là duy nhất.
func (s *UserService) CreateUser(ctx context.Context, input *authdto.UserCreateInput) (models.User, error) {
	var zero models.User
	if err := utility.ValidatePassword(input.Password); err != nil {
		return zero, err
	}
	_, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": input.Name}, nil)
	if err == nil {
		return zero, common.NewError(common.ErrCodeValidationInput, "Tên người dùng đã tồn tại", common.StatusConflict, nil)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	salt, err := newSalt()
	if err != nil {
		return zero, err
	}
	user := models.User{
		Name:     input.Name,
		Password: hashPassword(input.Password, salt),
		Salt:     salt,
		Role:     input.Role,
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, user)
}

// UpdateUser cập nhật thông tin người dùng, băm lại mật khẩu nếu được đổi.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, input *authdto.UserUpdateInput) (models.User, error) {
	var zero models.User
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Role != "" {
		set["role"] = input.Role
	}
	if input.Password != "" {
		if err := utility.ValidatePassword(input.Password); err != nil {
			return zero, err
		}
		salt, err := newSalt()
		if err != nil {
			return zero, err
		}
		set["salt"] = salt
		set["passwordHash"] = hashPassword(input.Password, salt)
	}
	if len(set) == 0 {
		return zero, common.ErrInvalidInput
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
}

// Login xác thực người dùng và phát hành JWT.
// Role sales chỉ được đăng nhập một lần mỗi ngày (theo ngày địa phương), admin không bị giới hạn.
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginResponse, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": input.Name}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Role != input.Role {
		return nil, common.ErrInvalidCredentials
	}
	if hashPassword(input.Password, user.Salt) != user.Password {
		logrus.WithFields(logrus.Fields{"user": input.Name}).Warn("Login: Sai mật khẩu")
		return nil, common.ErrInvalidCredentials
	}

	today := periods.Today()
	if user.Role == models.RoleSales && user.LastLoginDate == today {
		return nil, common.NewError(common.ErrCodeBusinessOperation, "Tài khoản sales chỉ được đăng nhập một lần mỗi ngày", common.StatusForbidden, nil)
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"lastLoginDate": today},
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData); err != nil {
		logrus.WithFields(logrus.Fields{"user": user.Name, "error": err.Error()}).Error("Login: Lỗi cập nhật lastLoginDate")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user": user.Name, "role": user.Role}).Info("Login: Đăng nhập thành công")
	return &authdto.LoginResponse{Token: token, Name: user.Name, Role: user.Role}, nil
}

// issueToken phát hành JWT HS256 với claims name/role và thời hạn theo cấu hình.
func (s *UserService) issueToken(user *models.User) (string, error) {
	claims := models.TokenClaims{
		Name: user.Name,
		Role: user.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Duration(global.ServerConfig.JwtExpireHours) * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(global.ServerConfig.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể phát hành token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// SeedAdmin tạo tài khoản admin nếu chưa tồn tại. Gọi lúc khởi động server.
func (s *UserService) SeedAdmin(ctx context.Context, name string, password string) error {
	if password == "" {
		return nil
	}
	_, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": name}, nil)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}
	_, err = s.CreateUser(ctx, &authdto.UserCreateInput{
		Name:     name,
		Password: password,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"user": name}).Info("SeedAdmin: Đã tạo tài khoản admin")
	return nil
}
