package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestCategoryCreateInput_ToModel(t *testing.T) {
	parentID := primitive.NewObjectID()
	input := CategoryCreateInput{
		Name:     "iPhone",
		Slug:     "iphone",
		ParentID: parentID.Hex(),
	}

	category := input.ToModel()

	assert.Equal(t, "iPhone", category.Name)
	assert.Equal(t, "iphone", category.Slug)
	require.NotNil(t, category.ParentID)
	assert.Equal(t, parentID, *category.ParentID)
}

func TestCategoryCreateInput_ToModelKhongCha(t *testing.T) {
	input := CategoryCreateInput{Name: "Điện thoại", Slug: "dien-thoai"}

	category := input.ToModel()

	assert.Nil(t, category.ParentID)
}

func TestCategoryCreateInput_SubcategoryModels(t *testing.T) {
	input := CategoryCreateInput{
		Name: "Điện thoại",
		Slug: "dien-thoai",
		Subcategories: []SubcategoryInput{
			{Name: "iPhone", Slug: "iphone"},
			{Name: "Samsung", Slug: "samsung"},
		},
	}

	subs := input.SubcategoryModels()

	require.Len(t, subs, 2)
	assert.Equal(t, "iPhone", subs[0].Name)
	assert.Equal(t, "samsung", subs[1].Slug)
}

func TestCategoryUpdateInput_ChiCapNhatFieldDuocGui(t *testing.T) {
	input := CategoryUpdateInput{Name: strPtr("Tên mới")}

	update := input.ToUpdateData()

	assert.Equal(t, "Tên mới", update.Set["name"])
	_, hasSlug := update.Set["slug"]
	assert.False(t, hasSlug)
	_, hasImage := update.Set["imageUrl"]
	assert.False(t, hasImage)
}

func TestCategoryUpdateInput_BoChaBangChuoiRong(t *testing.T) {
	input := CategoryUpdateInput{ParentID: strPtr("")}

	update := input.ToUpdateData()

	_, hasParent := update.Set["parentId"]
	assert.False(t, hasParent)
	_, unsetParent := update.Unset["parentId"]
	assert.True(t, unsetParent)
}
