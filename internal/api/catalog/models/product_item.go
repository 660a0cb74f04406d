package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductItem là phiên bản bán được của một sản phẩm
// (ví dụ: iPhone 15 128GB), truy cập công khai qua slug.
type ProductItem struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`              // ID của phiên bản
	Name        string             `json:"name" bson:"name"`                     // Tên hiển thị của phiên bản
	Slug        string             `json:"slug" bson:"slug"`                     // Slug duy nhất, dùng cho trang chi tiết
	ProductID   primitive.ObjectID `json:"productId" bson:"productId"`           // ID sản phẩm cha
	Price       float64            `json:"price" bson:"price"`                   // Giá bán hiện tại
	OldPrice    float64            `json:"oldPrice" bson:"oldPrice,omitempty"`   // Giá trước giảm (0 nếu không giảm)
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail,omitempty"` // Ảnh đại diện
	Description string             `json:"description" bson:"description,omitempty"` // Mô tả chi tiết
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`           // Thời điểm tạo (Unix ms)
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`           // Thời điểm cập nhật cuối (Unix ms)
}
