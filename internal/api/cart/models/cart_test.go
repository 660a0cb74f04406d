package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMergeItems_CongDonTheoKhoa(t *testing.T) {
	itemA := primitive.NewObjectID()

	existing := []CartItem{
		{ItemID: itemA, ColorName: "Đen", Quantity: 1},
	}
	incoming := []CartItem{
		{ItemID: itemA, ColorName: "Đen", Quantity: 2},
	}

	merged := MergeItems(existing, incoming)

	require.Len(t, merged, 1)
	assert.Equal(t, int64(3), merged[0].Quantity)
}

func TestMergeItems_MauKhacLaDongRieng(t *testing.T) {
	itemA := primitive.NewObjectID()

	existing := []CartItem{
		{ItemID: itemA, ColorName: "Đen", Quantity: 1},
	}
	incoming := []CartItem{
		{ItemID: itemA, ColorName: "Trắng", Quantity: 1},
	}

	merged := MergeItems(existing, incoming)

	require.Len(t, merged, 2)
	assert.Equal(t, "Đen", merged[0].ColorName)
	assert.Equal(t, "Trắng", merged[1].ColorName)
}

func TestMergeItems_GiuThuTuThemVao(t *testing.T) {
	itemA := primitive.NewObjectID()
	itemB := primitive.NewObjectID()
	itemC := primitive.NewObjectID()

	existing := []CartItem{
		{ItemID: itemA, ColorName: "Đen", Quantity: 1},
		{ItemID: itemB, ColorName: "Xanh", Quantity: 1},
	}
	incoming := []CartItem{
		{ItemID: itemC, ColorName: "Đỏ", Quantity: 1},
		{ItemID: itemA, ColorName: "Đen", Quantity: 5},
	}

	merged := MergeItems(existing, incoming)

	require.Len(t, merged, 3)
	// Dòng trùng khóa cộng dồn tại vị trí cũ, dòng mới nối vào cuối
	assert.Equal(t, itemA, merged[0].ItemID)
	assert.Equal(t, int64(6), merged[0].Quantity)
	assert.Equal(t, itemB, merged[1].ItemID)
	assert.Equal(t, itemC, merged[2].ItemID)
}

func TestMergeItems_GioRong(t *testing.T) {
	itemA := primitive.NewObjectID()

	merged := MergeItems(nil, []CartItem{{ItemID: itemA, ColorName: "Đen", Quantity: 2}})

	require.Len(t, merged, 1)
	assert.Equal(t, int64(2), merged[0].Quantity)
}

func TestMergeItems_IncomingRongKhongDoiGio(t *testing.T) {
	itemA := primitive.NewObjectID()
	existing := []CartItem{{ItemID: itemA, ColorName: "Đen", Quantity: 1}}

	merged := MergeItems(existing, nil)

	assert.Equal(t, existing, merged)
}
