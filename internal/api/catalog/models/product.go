package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product đại diện cho một dòng sản phẩm (ví dụ: iPhone 15).
// Các phiên bản bán được (dung lượng, cấu hình) nằm ở ProductItem.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`              // ID của sản phẩm
	Name        string             `json:"name" bson:"name"`                     // Tên sản phẩm
	CategoryID  primitive.ObjectID `json:"categoryId" bson:"categoryId"`         // ID danh mục chứa sản phẩm
	Description string             `json:"description" bson:"description,omitempty"` // Mô tả sản phẩm
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`           // Thời điểm tạo (Unix ms)
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`           // Thời điểm cập nhật cuối (Unix ms)
}
