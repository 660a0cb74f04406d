package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stock là tồn kho của một phiên bản sản phẩm theo màu
type Stock struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`            // ID của bản ghi tồn kho
	ProductItemID primitive.ObjectID `json:"productItemId" bson:"productItemId"` // ID phiên bản sản phẩm
	ColorName     string             `json:"colorName" bson:"colorName"`         // Tên màu (tham chiếu Color.Name)
	Quantity      int64              `json:"quantity" bson:"quantity"`           // Số lượng còn trong kho
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`         // Thời điểm tạo (Unix ms)
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`         // Thời điểm cập nhật cuối (Unix ms)
}
