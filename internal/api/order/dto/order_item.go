package dto

import (
	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/api/order/models"
	"shop_commerce/internal/utility"
)

// OrderItemCreateInput là input để tạo dòng hàng trong đơn
type OrderItemCreateInput struct {
	OrderID       string  `json:"orderId" validate:"required,object_id,exists=orders"`              // ID đơn hàng
	ProductItemID string  `json:"productItemId" validate:"required,object_id,exists=product_items"` // ID phiên bản sản phẩm
	ColorName     string  `json:"colorName" validate:"required"`                                     // Màu được chọn
	Quantity      int64   `json:"quantity" validate:"required,gt=0"`                                 // Số lượng
	Price         float64 `json:"price" validate:"required,gt=0"`                                    // Đơn giá tại thời điểm đặt
}

// ToModel chuyển input sang model OrderItem
func (input OrderItemCreateInput) ToModel() models.OrderItem {
	return models.OrderItem{
		OrderID:       utility.String2ObjectID(input.OrderID),
		ProductItemID: utility.String2ObjectID(input.ProductItemID),
		ColorName:     input.ColorName,
		Quantity:      input.Quantity,
		Price:         input.Price,
	}
}

// OrderItemUpdateInput là input để cập nhật dòng hàng
type OrderItemUpdateInput struct {
	ColorName *string  `json:"colorName" validate:"omitempty"`      // Màu mới
	Quantity  *int64   `json:"quantity" validate:"omitempty,gt=0"`  // Số lượng mới
	Price     *float64 `json:"price" validate:"omitempty,gt=0"`     // Đơn giá mới
}

// ToUpdateData chuyển input sang UpdateData cho MongoDB
func (input OrderItemUpdateInput) ToUpdateData() basemodels.UpdateData {
	update := basemodels.UpdateData{Set: map[string]interface{}{}}
	if input.ColorName != nil {
		update.Set["colorName"] = *input.ColorName
	}
	if input.Quantity != nil {
		update.Set["quantity"] = *input.Quantity
	}
	if input.Price != nil {
		update.Set["price"] = *input.Price
	}
	return update
}
