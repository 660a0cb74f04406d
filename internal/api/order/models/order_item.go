package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem là một dòng hàng trong đơn.
// Price là giá tại thời điểm đặt, không thay đổi khi giá phiên bản thay đổi.
type OrderItem struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`            // ID của dòng hàng
	OrderID       primitive.ObjectID `json:"orderId" bson:"orderId"`             // ID đơn hàng chứa dòng này
	ProductItemID primitive.ObjectID `json:"productItemId" bson:"productItemId"` // ID phiên bản sản phẩm
	ColorName     string             `json:"colorName" bson:"colorName"`         // Màu được chọn
	Quantity      int64              `json:"quantity" bson:"quantity"`           // Số lượng
	Price         float64            `json:"price" bson:"price"`                 // Đơn giá tại thời điểm đặt
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`         // Thời điểm tạo (Unix ms)
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`         // Thời điểm cập nhật cuối (Unix ms)
}
