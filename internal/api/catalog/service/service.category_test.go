package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/common"
)

func TestCheckBatchDuplicate_HopLe(t *testing.T) {
	parent := models.Category{Name: "Điện thoại", Slug: "dien-thoai"}
	subs := []models.Category{
		{Name: "iPhone", Slug: "iphone"},
		{Name: "Samsung", Slug: "samsung"},
	}

	assert.NoError(t, checkBatchDuplicate(parent, subs))
}

func TestCheckBatchDuplicate_TrungTenVoiCha(t *testing.T) {
	parent := models.Category{Name: "Điện thoại", Slug: "dien-thoai"}
	subs := []models.Category{
		{Name: "Điện thoại", Slug: "dien-thoai-con"},
	}

	err := checkBatchDuplicate(parent, subs)
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusConflict, customErr.StatusCode)
}

func TestCheckBatchDuplicate_TrungSlugGiuaCacCon(t *testing.T) {
	parent := models.Category{Name: "Điện thoại", Slug: "dien-thoai"}
	subs := []models.Category{
		{Name: "iPhone", Slug: "iphone"},
		{Name: "iPhone cũ", Slug: "iphone"},
	}

	err := checkBatchDuplicate(parent, subs)
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusConflict, customErr.StatusCode)
}

func TestCheckBatchDuplicate_KhongCoCon(t *testing.T) {
	parent := models.Category{Name: "Điện thoại", Slug: "dien-thoai"}
	assert.NoError(t, checkBatchDuplicate(parent, nil))
}
