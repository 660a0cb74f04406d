package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEffectiveCompoundKey_KhongDoiKhoa(t *testing.T) {
	itemID := primitive.NewObjectID()

	gotItem, gotColor, changed := effectiveCompoundKey(itemID, "Đỏ", map[string]interface{}{
		"images": []string{"https://cdn.example.com/a.jpg"},
	})

	assert.False(t, changed)
	assert.Equal(t, itemID, gotItem)
	assert.Equal(t, "Đỏ", gotColor)
}

func TestEffectiveCompoundKey_DoiTenMau(t *testing.T) {
	itemID := primitive.NewObjectID()

	gotItem, gotColor, changed := effectiveCompoundKey(itemID, "Đỏ", map[string]interface{}{
		"colorName": "Xanh",
	})

	assert.True(t, changed)
	assert.Equal(t, itemID, gotItem)
	assert.Equal(t, "Xanh", gotColor)
}

func TestEffectiveCompoundKey_DoiPhienBan(t *testing.T) {
	oldItemID := primitive.NewObjectID()
	newItemID := primitive.NewObjectID()

	gotItem, gotColor, changed := effectiveCompoundKey(oldItemID, "Đỏ", map[string]interface{}{
		"productItemId": newItemID,
	})

	assert.True(t, changed)
	assert.Equal(t, newItemID, gotItem)
	assert.Equal(t, "Đỏ", gotColor)
}

func TestEffectiveCompoundKey_DoiCaHai(t *testing.T) {
	newItemID := primitive.NewObjectID()

	gotItem, gotColor, changed := effectiveCompoundKey(primitive.NewObjectID(), "Đỏ", map[string]interface{}{
		"productItemId": newItemID,
		"colorName":     "Xanh",
	})

	assert.True(t, changed)
	assert.Equal(t, newItemID, gotItem)
	assert.Equal(t, "Xanh", gotColor)
}
