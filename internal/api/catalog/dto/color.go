package dto

import (
	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/api/catalog/models"
)

// ColorCreateInput là input để tạo mới màu sắc
type ColorCreateInput struct {
	Name string `json:"name" validate:"required"`                      // Tên màu, duy nhất
	Hex  string `json:"hex" validate:"omitempty,hexcolor"`             // Mã màu hex
}

// ToModel chuyển input sang model Color
func (input ColorCreateInput) ToModel() models.Color {
	return models.Color{
		Name: input.Name,
		Hex:  input.Hex,
	}
}

// ColorUpdateInput là input để cập nhật màu sắc
type ColorUpdateInput struct {
	Name *string `json:"name" validate:"omitempty"`          // Tên mới
	Hex  *string `json:"hex" validate:"omitempty,hexcolor"`  // Mã hex mới
}

// ToUpdateData chuyển input sang UpdateData cho MongoDB
func (input ColorUpdateInput) ToUpdateData() basemodels.UpdateData {
	update := basemodels.UpdateData{Set: map[string]interface{}{}}
	if input.Name != nil {
		update.Set["name"] = *input.Name
	}
	if input.Hex != nil {
		update.Set["hex"] = *input.Hex
	}
	return update
}
