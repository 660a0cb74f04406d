// Package dto chứa các cấu trúc input/output của domain auth
package dto

import (
	"shop_commerce/internal/api/auth/models"
)

// RegisterInput là input để đăng ký tài khoản mới
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`                      // Tên hiển thị
	Email    string `json:"email" validate:"required,email"`               // Email đăng nhập
	Password string `json:"password" validate:"required,strong_password"`  // Mật khẩu
}

// LoginInput là input để đăng nhập
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"` // Email đăng nhập
	Password string `json:"password" validate:"required"`    // Mật khẩu
}

// LoginResult là kết quả đăng nhập thành công
type LoginResult struct {
	Token string      `json:"token"` // JWT bearer token
	User  models.User `json:"user"`  // Thông tin người dùng
}
