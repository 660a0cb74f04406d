package global

import (
	"context"
	"regexp"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// slugRegex: chữ thường, số, dấu gạch ngang, không bắt đầu/kết thúc bằng gạch ngang
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("slug", validateSlug)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = Validate.RegisterValidation("exists", validateExists)
	_ = Validate.RegisterValidation("object_id", validateObjectID)
}

// validateSlug kiểm tra định dạng slug (natural key của category/product/product item)
func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // required xử lý riêng
	}
	return slugRegex.MatchString(value)
}

// validateObjectID kiểm tra chuỗi có phải MongoDB ObjectID hợp lệ không
func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return primitive.IsValidObjectID(value)
}

// validateStrongPassword kiểm tra mật khẩu mạnh (ít nhất 8 ký tự, 3/4 loại ký tự)
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	if len(value) < 8 {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	conditions := 0
	for _, ok := range []bool{hasUpper, hasLower, hasNumber, hasSpecial} {
		if ok {
			conditions++
		}
	}
	return conditions >= 3
}

// validateExists kiểm tra ObjectID có tồn tại trong collection không.
// Dùng: `validate:"exists=categories"` trên field string chứa ObjectID hex.
func validateExists(fl validator.FieldLevel) bool {
	collectionName := fl.Param()
	if collectionName == "" {
		return false
	}

	value := fl.Field().String()
	if value == "" {
		return true // optional field, required xử lý riêng
	}

	objectID, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return false
	}

	collection, ok := RegistryCollections.Get(collectionName)
	if !ok {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	count, err := collection.CountDocuments(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false
	}
	return count > 0
}
