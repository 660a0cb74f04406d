package dto

import (
	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/utility"
)

// StockCreateInput là input để tạo bản ghi tồn kho
type StockCreateInput struct {
	ProductItemID string `json:"productItemId" validate:"required,object_id,exists=product_items"` // ID phiên bản
	ColorName     string `json:"colorName" validate:"required"`                                     // Tên màu
	Quantity      int64  `json:"quantity" validate:"gte=0"`                                         // Số lượng
}

// ToModel chuyển input sang model Stock
func (input StockCreateInput) ToModel() models.Stock {
	return models.Stock{
		ProductItemID: utility.String2ObjectID(input.ProductItemID),
		ColorName:     input.ColorName,
		Quantity:      input.Quantity,
	}
}

// StockUpdateInput là input để cập nhật tồn kho
type StockUpdateInput struct {
	ColorName *string `json:"colorName" validate:"omitempty"`     // Tên màu mới
	Quantity  *int64  `json:"quantity" validate:"omitempty,gte=0"` // Số lượng mới
}

// ToUpdateData chuyển input sang UpdateData cho MongoDB
func (input StockUpdateInput) ToUpdateData() basemodels.UpdateData {
	update := basemodels.UpdateData{Set: map[string]interface{}{}}
	if input.ColorName != nil {
		update.Set["colorName"] = *input.ColorName
	}
	if input.Quantity != nil {
		update.Set["quantity"] = *input.Quantity
	}
	return update
}
