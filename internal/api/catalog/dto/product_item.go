package dto

import (
	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/utility"
)

// ProductItemCreateInput là input để tạo mới phiên bản sản phẩm
type ProductItemCreateInput struct {
	Name        string  `json:"name" validate:"required"`                                 // Tên phiên bản
	Slug        string  `json:"slug" validate:"required,slug"`                            // Slug duy nhất
	ProductID   string  `json:"productId" validate:"required,object_id,exists=products"` // ID sản phẩm cha
	Price       float64 `json:"price" validate:"required,gt=0"`                           // Giá bán
	OldPrice    float64 `json:"oldPrice" validate:"omitempty,gte=0"`                      // Giá trước giảm
	Thumbnail   string  `json:"thumbnail" validate:"omitempty"`                           // Ảnh đại diện
	Description string  `json:"description" validate:"omitempty"`                         // Mô tả
}

// ToModel chuyển input sang model ProductItem
func (input ProductItemCreateInput) ToModel() models.ProductItem {
	return models.ProductItem{
		Name:        input.Name,
		Slug:        input.Slug,
		ProductID:   utility.String2ObjectID(input.ProductID),
		Price:       input.Price,
		OldPrice:    input.OldPrice,
		Thumbnail:   input.Thumbnail,
		Description: input.Description,
	}
}

// ProductItemUpdateInput là input để cập nhật phiên bản sản phẩm
type ProductItemUpdateInput struct {
	Name        *string  `json:"name" validate:"omitempty"`                                  // Tên mới
	Slug        *string  `json:"slug" validate:"omitempty,slug"`                             // Slug mới
	ProductID   *string  `json:"productId" validate:"omitempty,object_id,exists=products"` // Sản phẩm cha mới
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`                            // Giá mới
	OldPrice    *float64 `json:"oldPrice" validate:"omitempty,gte=0"`                        // Giá trước giảm mới
	Thumbnail   *string  `json:"thumbnail" validate:"omitempty"`                             // Ảnh mới
	Description *string  `json:"description" validate:"omitempty"`                           // Mô tả mới
}

// ToUpdateData chuyển input sang UpdateData cho MongoDB
func (input ProductItemUpdateInput) ToUpdateData() basemodels.UpdateData {
	update := basemodels.UpdateData{Set: map[string]interface{}{}}
	if input.Name != nil {
		update.Set["name"] = *input.Name
	}
	if input.Slug != nil {
		update.Set["slug"] = *input.Slug
	}
	if input.ProductID != nil {
		update.Set["productId"] = utility.String2ObjectID(*input.ProductID)
	}
	if input.Price != nil {
		update.Set["price"] = *input.Price
	}
	if input.OldPrice != nil {
		update.Set["oldPrice"] = *input.OldPrice
	}
	if input.Thumbnail != nil {
		update.Set["thumbnail"] = *input.Thumbnail
	}
	if input.Description != nil {
		update.Set["description"] = *input.Description
	}
	return update
}
