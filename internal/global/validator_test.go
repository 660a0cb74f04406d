package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	InitValidator()
	m.Run()
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"iphone-15-pro", true},
		{"iphone15", true},
		{"a", true},
		{"", true}, // required xử lý riêng
		{"-iphone", false},
		{"iphone-", false},
		{"iPhone-15", false},
		{"iphone 15", false},
		{"iphone--15", false},
	}

	for _, tt := range tests {
		err := Validate.Var(tt.value, "slug")
		if tt.valid {
			assert.NoError(t, err, "slug %q phải hợp lệ", tt.value)
		} else {
			assert.Error(t, err, "slug %q phải bị từ chối", tt.value)
		}
	}
}

func TestValidateStrongPassword(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"Abcdef12", true},    // hoa + thường + số
		{"abcdef1!", true},    // thường + số + đặc biệt
		{"Abc123", false},     // dưới 8 ký tự
		{"abcdefgh", false},   // chỉ 1 loại ký tự
		{"abcdefg1", false},   // chỉ 2 loại ký tự
	}

	for _, tt := range tests {
		err := Validate.Var(tt.value, "strong_password")
		if tt.valid {
			assert.NoError(t, err, "mật khẩu %q phải hợp lệ", tt.value)
		} else {
			assert.Error(t, err, "mật khẩu %q phải bị từ chối", tt.value)
		}
	}
}

func TestValidateObjectID(t *testing.T) {
	assert.NoError(t, Validate.Var("507f1f77bcf86cd799439011", "object_id"))
	assert.NoError(t, Validate.Var("", "object_id")) // optional
	assert.Error(t, Validate.Var("khong-phai-object-id", "object_id"))
	assert.Error(t, Validate.Var("507f1f77bcf86cd79943901", "object_id")) // 23 ký tự
}
