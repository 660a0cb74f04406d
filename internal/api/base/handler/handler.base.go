package basehandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "shop_commerce/internal/api/base/models"
	baseservice "shop_commerce/internal/api/base/service"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// CreateDTO ràng buộc input tạo mới phải chuyển được sang model
type CreateDTO[T any] interface {
	ToModel() T
}

// UpdateDTO ràng buộc input cập nhật phải chuyển được sang UpdateData
type UpdateDTO interface {
	ToUpdateData() basemodels.UpdateData
}

// FilterField khai báo một query param được phép filter trên danh sách
type FilterField struct {
	QueryParam string // Tên query param (ví dụ: "categoryId")
	BsonField  string // Tên field tương ứng trong MongoDB
	Contains   bool   // true: so khớp chuỗi con không phân biệt hoa thường; false: so khớp bằng
	IsObjectID bool   // true: giá trị là ObjectID hex, cần convert trước khi query
}

// BaseHandler chứa các thao tác chung cho mọi resource handler.
// Các domain handler nhúng BaseHandler và bổ sung các route mở rộng.
type BaseHandler[T any, C CreateDTO[T], U UpdateDTO] struct {
	Service      baseservice.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ
	FilterFields []FilterField                   // Các field được phép filter qua query param
	DefaultSort  bson.D                          // Sort mặc định cho danh sách
}

// ParsePagination đọc page/pageSize từ query params.
// Giá trị thiếu hoặc sai định dạng quy về mặc định (1, 10).
func (h *BaseHandler[T, C, U]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.ParseInt(c.Query("pageSize", "10"), 10, 64)
	if err != nil || pageSize < 1 {
		pageSize = 10
	}
	return page, pageSize
}

// ParseObjectID đọc và validate ObjectID từ path param
func (h *BaseHandler[T, C, U]) ParseObjectID(c fiber.Ctx, paramName string) (primitive.ObjectID, error) {
	idStr := c.Params(paramName)
	objectID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", idStr),
			common.StatusBadRequest, err)
	}
	return objectID, nil
}

// BuildFilter xây filter MongoDB từ query params theo khai báo FilterFields.
// Field dạng Contains dùng regex không phân biệt hoa thường, giá trị
// được escape để không bị hiểu nhầm thành regex pattern.
func (h *BaseHandler[T, C, U]) BuildFilter(c fiber.Ctx) bson.M {
	filter := bson.M{}
	for _, field := range h.FilterFields {
		value := c.Query(field.QueryParam)
		if value == "" {
			continue
		}

		switch {
		case field.IsObjectID:
			objectID, err := primitive.ObjectIDFromHex(value)
			if err != nil {
				continue
			}
			filter[field.BsonField] = objectID
		case field.Contains:
			filter[field.BsonField] = bson.M{
				"$regex":   regexp.QuoteMeta(value),
				"$options": "i",
			}
		default:
			filter[field.BsonField] = value
		}
	}
	return filter
}

// ParseRequestBody parse JSON body vào struct và validate.
// Dùng UseNumber để không mất độ chính xác với số lớn.
func (h *BaseHandler[T, C, U]) ParseRequestBody(c fiber.Ctx, out interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	return ValidateStruct(out)
}

// ValidateStruct validate struct bằng validator toàn cục,
// trả về lỗi 400 với thông báo chỉ rõ field đầu tiên không hợp lệ
func ValidateStruct(data interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(data); err != nil {
		message := common.MsgValidationError
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			first := validationErrs[0]
			message = fmt.Sprintf("Trường '%s' không hợp lệ (quy tắc: %s)", first.Field(), first.Tag())
		}
		return common.NewError(common.ErrCodeValidationInput, message, common.StatusBadRequest, err)
	}
	return nil
}
