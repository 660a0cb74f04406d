// Package dto chứa các cấu trúc input/output của domain banner
package dto

import (
	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/api/banner/models"
)

// BannerCreateInput là input để tạo mới banner
type BannerCreateInput struct {
	Title    string `json:"title" validate:"required"`          // Tiêu đề
	ImageURL string `json:"imageUrl" validate:"required,url"`   // URL ảnh
	Link     string `json:"link" validate:"omitempty,url"`      // Đường dẫn khi bấm
	Position int64  `json:"position" validate:"gte=0"`          // Thứ tự hiển thị
	Active   bool   `json:"active"`                             // Hiển thị ngay hay không
}

// ToModel chuyển input sang model Banner
func (input BannerCreateInput) ToModel() models.Banner {
	return models.Banner{
		Title:    input.Title,
		ImageURL: input.ImageURL,
		Link:     input.Link,
		Position: input.Position,
		Active:   input.Active,
	}
}

// BannerUpdateInput là input để cập nhật banner
type BannerUpdateInput struct {
	Title    *string `json:"title" validate:"omitempty"`        // Tiêu đề mới
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"` // URL ảnh mới
	Link     *string `json:"link" validate:"omitempty,url"`     // Đường dẫn mới
	Position *int64  `json:"position" validate:"omitempty,gte=0"` // Thứ tự mới
	Active   *bool   `json:"active" validate:"omitempty"`       // Trạng thái hiển thị mới
}

// ToUpdateData chuyển input sang UpdateData cho MongoDB
func (input BannerUpdateInput) ToUpdateData() basemodels.UpdateData {
	update := basemodels.UpdateData{Set: map[string]interface{}{}}
	if input.Title != nil {
		update.Set["title"] = *input.Title
	}
	if input.ImageURL != nil {
		update.Set["imageUrl"] = *input.ImageURL
	}
	if input.Link != nil {
		update.Set["link"] = *input.Link
	}
	if input.Position != nil {
		update.Set["position"] = *input.Position
	}
	if input.Active != nil {
		update.Set["active"] = *input.Active
	}
	return update
}
