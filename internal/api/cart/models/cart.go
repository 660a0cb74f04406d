// Package models chứa các model của domain cart
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem là một dòng hàng trong giỏ, định danh bởi cặp (ItemID, ColorName)
type CartItem struct {
	ItemID    primitive.ObjectID `json:"itemId" bson:"itemId"`       // ID phiên bản sản phẩm
	ColorName string             `json:"colorName" bson:"colorName"` // Màu được chọn
	Quantity  int64              `json:"quantity" bson:"quantity"`   // Số lượng
}

// Cart là giỏ hàng của một người dùng, mỗi người dùng có tối đa một giỏ
type Cart struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`    // ID của giỏ hàng
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`       // ID người dùng sở hữu giỏ
	Items     []CartItem         `json:"items" bson:"items"`         // Các dòng hàng, giữ nguyên thứ tự thêm vào
	CreatedAt int64              `json:"createdAt" bson:"createdAt"` // Thời điểm tạo (Unix ms)
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"` // Thời điểm cập nhật cuối (Unix ms)
}

// MergeItems gộp các dòng hàng mới vào danh sách hiện có.
// Dòng trùng khóa (itemId, colorName) được cộng dồn số lượng tại vị trí cũ,
// dòng mới được nối vào cuối theo thứ tự gửi lên.
func MergeItems(existing []CartItem, incoming []CartItem) []CartItem {
	merged := make([]CartItem, len(existing))
	copy(merged, existing)

	type itemKey struct {
		itemID    primitive.ObjectID
		colorName string
	}
	index := make(map[itemKey]int, len(merged))
	for i, item := range merged {
		index[itemKey{item.ItemID, item.ColorName}] = i
	}

	for _, item := range incoming {
		key := itemKey{item.ItemID, item.ColorName}
		if i, ok := index[key]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[key] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
