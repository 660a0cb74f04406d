package dto

import (
	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/utility"
)

// ProductColorCreateInput là input để tạo bộ ảnh theo màu cho phiên bản sản phẩm
type ProductColorCreateInput struct {
	ProductItemID string   `json:"productItemId" validate:"required,object_id,exists=product_items"` // ID phiên bản
	ColorName     string   `json:"colorName" validate:"required"`                                     // Tên màu
	Images        []string `json:"images" validate:"required,min=1,dive,url"`                         // Danh sách URL ảnh
}

// ToModel chuyển input sang model ProductColor
func (input ProductColorCreateInput) ToModel() models.ProductColor {
	return models.ProductColor{
		ProductItemID: utility.String2ObjectID(input.ProductItemID),
		ColorName:     input.ColorName,
		Images:        input.Images,
	}
}

// ProductColorUpdateInput là input để cập nhật bộ ảnh theo màu
type ProductColorUpdateInput struct {
	ColorName *string   `json:"colorName" validate:"omitempty"`                // Tên màu mới
	Images    *[]string `json:"images" validate:"omitempty,min=1,dive,url"`    // Danh sách ảnh mới
}

// ToUpdateData chuyển input sang UpdateData cho MongoDB
func (input ProductColorUpdateInput) ToUpdateData() basemodels.UpdateData {
	update := basemodels.UpdateData{Set: map[string]interface{}{}}
	if input.ColorName != nil {
		update.Set["colorName"] = *input.ColorName
	}
	if input.Images != nil {
		update.Set["images"] = *input.Images
	}
	return update
}
