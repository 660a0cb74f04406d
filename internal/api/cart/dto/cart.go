// Package dto chứa các cấu trúc input/output của domain cart
package dto

import (
	"shop_commerce/internal/api/cart/models"
	"shop_commerce/internal/utility"
)

// CartItemInput là một dòng hàng gửi lên để thêm vào giỏ
type CartItemInput struct {
	ItemID    string `json:"itemId" validate:"required,object_id,exists=product_items"` // ID phiên bản sản phẩm
	ColorName string `json:"colorName" validate:"required"`                              // Màu được chọn
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`                          // Số lượng thêm vào
}

// CartAddInput là input để thêm các dòng hàng vào giỏ
type CartAddInput struct {
	Items []CartItemInput `json:"items" validate:"required,min=1,dive"` // Các dòng hàng cần thêm
}

// ToModels chuyển input sang danh sách CartItem
func (input CartAddInput) ToModels() []models.CartItem {
	items := make([]models.CartItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.CartItem{
			ItemID:    utility.String2ObjectID(item.ItemID),
			ColorName: item.ColorName,
			Quantity:  item.Quantity,
		})
	}
	return items
}
