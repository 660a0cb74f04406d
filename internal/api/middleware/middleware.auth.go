// Package middleware chứa các middleware xác thực và phân quyền
package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gofiber/fiber/v3"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// Các key lưu trong Locals sau khi xác thực
const (
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
)

// TokenClaims là claims của JWT do hệ thống phát hành
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// extractToken lấy token từ header Authorization dạng "Bearer <token>"
func extractToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthRequired xác thực JWT và lưu thông tin user vào Locals.
// Trả về 401 khi thiếu token, token sai hoặc hết hạn.
func AuthRequired(c fiber.Ctx) error {
	tokenString := extractToken(c)
	if tokenString == "" {
		return basehandler.HandleError(c, common.ErrTokenMissing)
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return basehandler.HandleError(c, common.ErrTokenExpired)
		}
		return basehandler.HandleError(c, common.ErrTokenInvalid)
	}
	if !token.Valid || claims.UserID == "" {
		return basehandler.HandleError(c, common.ErrTokenInvalid)
	}

	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalUserRole, claims.Role)
	return c.Next()
}

// AdminRequired kiểm tra user đã xác thực có vai trò admin không.
// Phải đứng sau AuthRequired trong chuỗi middleware.
func AdminRequired(c fiber.Ctx) error {
	role, _ := c.Locals(LocalUserRole).(string)
	if role != "admin" {
		return basehandler.HandleError(c, common.ErrNotAdmin)
	}
	return c.Next()
}
