// Package models chứa các model của domain banner
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner là ảnh quảng cáo hiển thị trên trang chủ
type Banner struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`        // ID của banner
	Title     string             `json:"title" bson:"title"`             // Tiêu đề banner
	ImageURL  string             `json:"imageUrl" bson:"imageUrl"`       // URL ảnh banner
	Link      string             `json:"link" bson:"link,omitempty"`     // Đường dẫn khi bấm vào banner
	Position  int64              `json:"position" bson:"position"`       // Thứ tự hiển thị (nhỏ hiển thị trước)
	Active    bool               `json:"active" bson:"active"`           // Banner có đang hiển thị không
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`     // Thời điểm tạo (Unix ms)
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`     // Thời điểm cập nhật cuối (Unix ms)
}
