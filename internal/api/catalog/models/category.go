// Package models chứa các model của domain catalog
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category đại diện cho danh mục sản phẩm.
// Danh mục con tham chiếu danh mục cha qua ParentID (null = danh mục gốc).
type Category struct {
	ID        primitive.ObjectID  `json:"id" bson:"_id,omitempty"`          // ID của danh mục
	Name      string              `json:"name" bson:"name"`                 // Tên danh mục
	Slug      string              `json:"slug" bson:"slug"`                 // Slug duy nhất của danh mục
	ParentID  *primitive.ObjectID `json:"parentId" bson:"parentId,omitempty"` // ID danh mục cha (null nếu là gốc)
	ImageURL  string              `json:"imageUrl" bson:"imageUrl,omitempty"` // Ảnh đại diện
	CreatedAt int64               `json:"createdAt" bson:"createdAt"`       // Thời điểm tạo (Unix ms)
	UpdatedAt int64               `json:"updatedAt" bson:"updatedAt"`       // Thời điểm cập nhật cuối (Unix ms)
}

// CategoryNode là một node trong cây danh mục
type CategoryNode struct {
	Category `bson:",inline"`
	Children []*CategoryNode `json:"children"` // Các danh mục con trực tiếp
}
