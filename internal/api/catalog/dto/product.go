package dto

import (
	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/utility"
)

// ProductCreateInput là input để tạo mới sản phẩm
type ProductCreateInput struct {
	Name        string `json:"name" validate:"required"`                          // Tên sản phẩm
	CategoryID  string `json:"categoryId" validate:"required,object_id,exists=categories"` // ID danh mục
	Description string `json:"description" validate:"omitempty"`                  // Mô tả
}

// ToModel chuyển input sang model Product
func (input ProductCreateInput) ToModel() models.Product {
	return models.Product{
		Name:        input.Name,
		CategoryID:  utility.String2ObjectID(input.CategoryID),
		Description: input.Description,
	}
}

// ProductUpdateInput là input để cập nhật sản phẩm
type ProductUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty"`                                    // Tên mới
	CategoryID  *string `json:"categoryId" validate:"omitempty,object_id,exists=categories"` // Danh mục mới
	Description *string `json:"description" validate:"omitempty"`                             // Mô tả mới
}

// ToUpdateData chuyển input sang UpdateData cho MongoDB
func (input ProductUpdateInput) ToUpdateData() basemodels.UpdateData {
	update := basemodels.UpdateData{Set: map[string]interface{}{}}
	if input.Name != nil {
		update.Set["name"] = *input.Name
	}
	if input.CategoryID != nil {
		update.Set["categoryId"] = utility.String2ObjectID(*input.CategoryID)
	}
	if input.Description != nil {
		update.Set["description"] = *input.Description
	}
	return update
}
