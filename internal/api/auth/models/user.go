// Package models chứa các model của domain auth
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò của người dùng
const (
	RoleUser  = "user"  // Khách hàng thường
	RoleAdmin = "admin" // Quản trị viên, được phép ghi dữ liệu catalog
)

// User đại diện cho người dùng của hệ thống.
// PasswordHash không bao giờ được serialize ra response.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`        // ID của người dùng
	Name         string             `json:"name" bson:"name"`               // Tên hiển thị
	Email        string             `json:"email" bson:"email"`             // Email đăng nhập, duy nhất
	PasswordHash string             `json:"-" bson:"passwordHash"`          // Mật khẩu đã băm bcrypt
	Role         string             `json:"role" bson:"role"`               // Vai trò (user/admin)
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`     // Thời điểm tạo (Unix ms)
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`     // Thời điểm cập nhật cuối (Unix ms)
}
