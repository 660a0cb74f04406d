// Package handler chứa các HTTP handler của domain storage
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/storage/service"
	"shop_commerce/internal/common"
)

// StorageHandler xử lý upload và xóa file ảnh
type StorageHandler struct {
	storageService *service.StorageService
}

// NewStorageHandler tạo mới StorageHandler
func NewStorageHandler() (*StorageHandler, error) {
	storageService, err := service.NewStorageService()
	if err != nil {
		return nil, err
	}
	return &StorageHandler{storageService: storageService}, nil
}

// Upload nhận file ảnh từ form field "image", lưu và trả về URL công khai
func (h *StorageHandler) Upload(c fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return basehandler.HandleError(c, common.NewError(common.ErrCodeValidationInput,
			"Thiếu file upload (form field 'image')", common.StatusBadRequest, err))
	}

	result, err := h.storageService.SaveImage(file)
	return basehandler.HandleCreated(c, result, err)
}

// Delete xóa file ảnh theo query param filename
func (h *StorageHandler) Delete(c fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return basehandler.HandleError(c, common.NewError(common.ErrCodeValidationInput,
			"Thiếu tham số filename", common.StatusBadRequest, nil))
	}

	return basehandler.HandleDeleted(c, h.storageService.DeleteImage(filename))
}
