package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))
}

func TestConvertMongoError_NotFoundGiuNguyen(t *testing.T) {
	err := ConvertMongoError(ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))

	var customErr *Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, StatusNotFound, customErr.StatusCode)
}

func TestConvertMongoError_CustomErrorGiuNguyen(t *testing.T) {
	original := NewError(ErrCodeBusinessOperation, "Không thể xóa vì còn 3 dữ liệu đang tham chiếu", StatusConflict, nil)
	converted := ConvertMongoError(original)
	assert.Equal(t, original, converted)
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	// Mongo trả về WriteException với code 11000 khi vi phạm unique index
	writeErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	converted := ConvertMongoError(writeErr)

	var customErr *Error
	require.True(t, errors.As(converted, &customErr))
	assert.Equal(t, StatusConflict, customErr.StatusCode)
	assert.Equal(t, ErrCodeDatabaseDuplicate.Code, customErr.Code.Code)
}

func TestConvertMongoError_CommandErrorTheoDaiCode(t *testing.T) {
	tests := []struct {
		name           string
		code           int32
		wantStatusCode int
	}{
		{"connection", 150, StatusServiceUnavailable},
		{"auth", 250, StatusUnauthorized},
		{"query", 350, StatusInternalServerError},
		{"write", 450, StatusInternalServerError},
		{"system", 550, StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted := ConvertMongoError(mongo.CommandError{Code: tt.code, Message: "command failed"})

			var customErr *Error
			require.True(t, errors.As(converted, &customErr))
			assert.Equal(t, tt.wantStatusCode, customErr.StatusCode)
		})
	}
}

func TestConvertMongoError_LoiKhongNhanDien(t *testing.T) {
	converted := ConvertMongoError(errors.New("something unexpected"))

	var customErr *Error
	require.True(t, errors.As(converted, &customErr))
	assert.Equal(t, StatusInternalServerError, customErr.StatusCode)
	// Lỗi gốc phải nằm trong Details để log, không nằm trong Message
	assert.NotNil(t, customErr.Details)
	assert.Equal(t, MsgDatabaseError, customErr.Message)
}

func TestErrorIs(t *testing.T) {
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrDuplicate))
}
