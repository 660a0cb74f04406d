package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductColor chứa bộ ảnh của một phiên bản sản phẩm theo từng màu
type ProductColor struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`            // ID của bản ghi
	ProductItemID primitive.ObjectID `json:"productItemId" bson:"productItemId"` // ID phiên bản sản phẩm
	ColorName     string             `json:"colorName" bson:"colorName"`         // Tên màu (tham chiếu Color.Name)
	Images        []string           `json:"images" bson:"images"`               // Danh sách URL ảnh
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`         // Thời điểm tạo (Unix ms)
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`         // Thời điểm cập nhật cuối (Unix ms)
}
