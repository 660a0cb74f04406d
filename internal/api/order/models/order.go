// Package models chứa các model của domain order
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái đơn hàng
const (
	OrderStatusPending   = "pending"   // Mới tạo, chờ xác nhận
	OrderStatusConfirmed = "confirmed" // Đã xác nhận
	OrderStatusShipping  = "shipping"  // Đang giao
	OrderStatusCompleted = "completed" // Hoàn thành
	OrderStatusCancelled = "cancelled" // Đã hủy
)

// Order đại diện cho một đơn hàng
type Order struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`            // ID của đơn hàng
	CustomerName string             `json:"customerName" bson:"customerName"`   // Tên khách hàng
	Phone        string             `json:"phone" bson:"phone"`                 // Số điện thoại
	Email        string             `json:"email" bson:"email,omitempty"`       // Email liên hệ
	Address      string             `json:"address" bson:"address"`             // Địa chỉ giao hàng
	Note         string             `json:"note" bson:"note,omitempty"`         // Ghi chú của khách
	Status       string             `json:"status" bson:"status"`               // Trạng thái đơn hàng
	Total        float64            `json:"total" bson:"total"`                 // Tổng tiền
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`         // Thời điểm tạo (Unix ms)
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`         // Thời điểm cập nhật cuối (Unix ms)
}
