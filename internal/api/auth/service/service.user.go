// Package service chứa logic nghiệp vụ của domain auth
package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	baseservice "shop_commerce/internal/api/base/service"
	"shop_commerce/internal/api/auth/dto"
	"shop_commerce/internal/api/auth/models"
	"shop_commerce/internal/api/middleware"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// UserService xử lý nghiệp vụ người dùng và xác thực
type UserService struct {
	*baseservice.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection người dùng chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &UserService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.User](collection),
	}, nil
}

// Register đăng ký tài khoản mới với vai trò user
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (models.User, error) {
	var zero models.User

	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeDatabaseDuplicate, "Email này đã được đăng ký", common.StatusConflict, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	return s.InsertOne(ctx, user)
}

// Login kiểm tra thông tin đăng nhập và phát hành JWT
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (dto.LoginResult, error) {
	var zero dto.LoginResult

	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		// Không tiết lộ email có tồn tại hay không
		return zero, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return zero, common.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return zero, err
	}
	return dto.LoginResult{Token: token, User: user}, nil
}

// issueToken phát hành JWT chứa userId, email và role
func (s *UserService) issueToken(user models.User) (string, error) {
	cfg := global.MongoDB_ServerConfig
	now := time.Now()
	claims := middleware.TokenClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JwtExpireHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}
	return signed, nil
}
