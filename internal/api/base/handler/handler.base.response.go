// Package basehandler cung cấp handler engine dùng chung: parse request,
// build filter, và trả response theo một envelope duy nhất.
package basehandler

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/logger"
)

// APIResponse là envelope duy nhất cho mọi response của API.
// Khi success = false, data luôn là null.
// Pagination chỉ xuất hiện trên các response danh sách.
type APIResponse struct {
	Success    bool                   `json:"success"`              // Thành công hay thất bại
	Data       interface{}            `json:"data"`                 // Dữ liệu trả về (null khi lỗi)
	Message    string                 `json:"message"`              // Thông báo cho người dùng
	Status     int                    `json:"status"`               // HTTP status code
	Pagination *basemodels.Pagination `json:"pagination,omitempty"` // Thông tin phân trang (chỉ có trên danh sách)
}

// JSONResponse trả về response dạng JSON với content type chuẩn
func JSONResponse(c fiber.Ctx, statusCode int, response APIResponse) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(response)
}

// HandleError phân loại error và trả về envelope lỗi tương ứng.
// Đây là điểm bắt lỗi duy nhất của tầng handler: Details của lỗi
// chỉ được ghi log, không bao giờ đi ra response.
func HandleError(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		entry := logger.WithRequest(c).WithField("error_code", customErr.Code.Code)
		if customErr.Details != nil {
			entry = entry.WithField("details", customErr.Details)
		}
		if customErr.StatusCode >= common.StatusInternalServerError {
			entry.Error(customErr.Message)
		} else {
			entry.Warn(customErr.Message)
		}
		return JSONResponse(c, customErr.StatusCode, APIResponse{
			Success: false,
			Data:    nil,
			Message: customErr.Message,
			Status:  customErr.StatusCode,
		})
	}

	// Lỗi chưa được phân loại: log nguyên văn, trả về 500 chung chung
	logger.GetErrorLogger().WithError(err).Error("Lỗi chưa được phân loại")
	return JSONResponse(c, common.StatusInternalServerError, APIResponse{
		Success: false,
		Data:    nil,
		Message: common.MsgInternalError,
		Status:  common.StatusInternalServerError,
	})
}

// HandleResponse trả về response thành công (200) hoặc chuyển cho HandleError
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return JSONResponse(c, common.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Message: common.MsgSuccess,
		Status:  common.StatusOK,
	})
}

// HandleCreated trả về response tạo mới thành công (201)
func HandleCreated(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return JSONResponse(c, common.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
		Message: common.MsgCreated,
		Status:  common.StatusCreated,
	})
}

// HandleDeleted trả về response xóa thành công
func HandleDeleted(c fiber.Ctx, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return JSONResponse(c, common.StatusOK, APIResponse{
		Success: true,
		Data:    fiber.Map{"deleted": true},
		Message: common.MsgDeleted,
		Status:  common.StatusOK,
	})
}

// SafeHandler bọc handler với recover để panic không làm sập server
func SafeHandler(handler fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		var err error
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.GetErrorLogger().WithFields(map[string]interface{}{
						"panic": r,
						"path":  c.Path(),
						"stack": string(debug.Stack()),
					}).Error("Panic trong handler")
					err = JSONResponse(c, common.StatusInternalServerError, APIResponse{
						Success: false,
						Data:    nil,
						Message: common.MsgInternalError,
						Status:  common.StatusInternalServerError,
					})
				}
			}()
			err = handler(c)
		}()
		return err
	}
}
