package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Color là bảng màu dùng chung của toàn hệ thống.
// ProductColor và Stock tham chiếu màu theo Name.
type Color struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`       // ID của màu
	Name      string             `json:"name" bson:"name"`              // Tên màu, duy nhất (ví dụ: "Titan tự nhiên")
	Hex       string             `json:"hex" bson:"hex,omitempty"`      // Mã màu hex để hiển thị
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`    // Thời điểm tạo (Unix ms)
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`    // Thời điểm cập nhật cuối (Unix ms)
}
