// Package dto chứa các cấu trúc input/output của domain catalog
package dto

import (
	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/utility"
)

// SubcategoryInput là input cho một danh mục con khi tạo cùng danh mục cha
type SubcategoryInput struct {
	Name     string `json:"name" validate:"required"`       // Tên danh mục con
	Slug     string `json:"slug" validate:"required,slug"`  // Slug danh mục con
	ImageURL string `json:"imageUrl" validate:"omitempty"`  // Ảnh đại diện
}

// CategoryCreateInput là input để tạo mới danh mục.
// Nếu có Subcategories, toàn bộ cha + con được tạo trong một transaction.
type CategoryCreateInput struct {
	Name          string             `json:"name" validate:"required"`              // Tên danh mục
	Slug          string             `json:"slug" validate:"required,slug"`         // Slug duy nhất
	ParentID      string             `json:"parentId" validate:"omitempty,object_id"` // ID danh mục cha (nếu là danh mục con)
	ImageURL      string             `json:"imageUrl" validate:"omitempty"`         // Ảnh đại diện
	Subcategories []SubcategoryInput `json:"subcategories" validate:"omitempty,dive"` // Danh mục con tạo kèm
}

// ToModel chuyển input sang model Category (không bao gồm subcategories)
func (input CategoryCreateInput) ToModel() models.Category {
	category := models.Category{
		Name:     input.Name,
		Slug:     input.Slug,
		ImageURL: input.ImageURL,
	}
	if input.ParentID != "" {
		parentID := utility.String2ObjectID(input.ParentID)
		category.ParentID = &parentID
	}
	return category
}

// SubcategoryModels chuyển danh sách subcategory input sang models
func (input CategoryCreateInput) SubcategoryModels() []models.Category {
	subs := make([]models.Category, 0, len(input.Subcategories))
	for _, sub := range input.Subcategories {
		subs = append(subs, models.Category{
			Name:     sub.Name,
			Slug:     sub.Slug,
			ImageURL: sub.ImageURL,
		})
	}
	return subs
}

// CategoryUpdateInput là input để cập nhật danh mục.
// Chỉ các field được gửi lên (khác nil) mới được cập nhật.
type CategoryUpdateInput struct {
	Name     *string `json:"name" validate:"omitempty"`               // Tên mới
	Slug     *string `json:"slug" validate:"omitempty,slug"`          // Slug mới
	ParentID *string `json:"parentId" validate:"omitempty,object_id"` // ID danh mục cha mới ("" để bỏ cha)
	ImageURL *string `json:"imageUrl" validate:"omitempty"`           // Ảnh mới
}

// ToUpdateData chuyển input sang UpdateData cho MongoDB
func (input CategoryUpdateInput) ToUpdateData() basemodels.UpdateData {
	update := basemodels.UpdateData{Set: map[string]interface{}{}}
	if input.Name != nil {
		update.Set["name"] = *input.Name
	}
	if input.Slug != nil {
		update.Set["slug"] = *input.Slug
	}
	if input.ParentID != nil {
		if *input.ParentID == "" {
			update.Unset = map[string]interface{}{"parentId": ""}
		} else {
			update.Set["parentId"] = utility.String2ObjectID(*input.ParentID)
		}
	}
	if input.ImageURL != nil {
		update.Set["imageUrl"] = *input.ImageURL
	}
	return update
}
