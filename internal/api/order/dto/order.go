// Package dto chứa các cấu trúc input/output của domain order
package dto

import (
	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/api/order/models"
)

// OrderCreateInput là input để tạo mới đơn hàng
type OrderCreateInput struct {
	CustomerName string  `json:"customerName" validate:"required"`       // Tên khách hàng
	Phone        string  `json:"phone" validate:"required"`              // Số điện thoại
	Email        string  `json:"email" validate:"omitempty,email"`       // Email liên hệ
	Address      string  `json:"address" validate:"required"`            // Địa chỉ giao hàng
	Note         string  `json:"note" validate:"omitempty"`              // Ghi chú
	Total        float64 `json:"total" validate:"gte=0"`                 // Tổng tiền
}

// ToModel chuyển input sang model Order, trạng thái ban đầu là pending
func (input OrderCreateInput) ToModel() models.Order {
	return models.Order{
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		Note:         input.Note,
		Status:       models.OrderStatusPending,
		Total:        input.Total,
	}
}

// OrderUpdateInput là input để cập nhật đơn hàng
type OrderUpdateInput struct {
	CustomerName *string  `json:"customerName" validate:"omitempty"`                                                     // Tên mới
	Phone        *string  `json:"phone" validate:"omitempty"`                                                            // Số điện thoại mới
	Email        *string  `json:"email" validate:"omitempty,email"`                                                      // Email mới
	Address      *string  `json:"address" validate:"omitempty"`                                                          // Địa chỉ mới
	Note         *string  `json:"note" validate:"omitempty"`                                                             // Ghi chú mới
	Status       *string  `json:"status" validate:"omitempty,oneof=pending confirmed shipping completed cancelled"`      // Trạng thái mới
	Total        *float64 `json:"total" validate:"omitempty,gte=0"`                                                      // Tổng tiền mới
}

// ToUpdateData chuyển input sang UpdateData cho MongoDB
func (input OrderUpdateInput) ToUpdateData() basemodels.UpdateData {
	update := basemodels.UpdateData{Set: map[string]interface{}{}}
	if input.CustomerName != nil {
		update.Set["customerName"] = *input.CustomerName
	}
	if input.Phone != nil {
		update.Set["phone"] = *input.Phone
	}
	if input.Email != nil {
		update.Set["email"] = *input.Email
	}
	if input.Address != nil {
		update.Set["address"] = *input.Address
	}
	if input.Note != nil {
		update.Set["note"] = *input.Note
	}
	if input.Status != nil {
		update.Set["status"] = *input.Status
	}
	if input.Total != nil {
		update.Set["total"] = *input.Total
	}
	return update
}
