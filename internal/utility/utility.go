// Package utility chứa các hàm tiện ích dùng chung
package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contains kiểm tra một phần tử có nằm trong slice không
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// String2ObjectID chuyển đổi chuỗi hex sang MongoDB ObjectID.
// Trả về ObjectID rỗng nếu chuỗi không hợp lệ.
func String2ObjectID(str string) primitive.ObjectID {
	objectID, err := primitive.ObjectIDFromHex(str)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectID
}
