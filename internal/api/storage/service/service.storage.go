// Package service chứa logic lưu trữ file upload
package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
	"shop_commerce/internal/utility"
)

// Các đuôi file ảnh được phép upload
var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// StorageService lưu file upload xuống đĩa và build URL công khai
type StorageService struct {
	uploadDir     string
	publicBaseURL string
}

// NewStorageService tạo mới StorageService, đảm bảo thư mục upload tồn tại
func NewStorageService() (*StorageService, error) {
	cfg := global.MongoDB_ServerConfig
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer,
			"Không thể tạo thư mục upload", common.StatusInternalServerError, err)
	}
	return &StorageService{
		uploadDir:     cfg.UploadDir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// UploadResult là kết quả upload một file ảnh
type UploadResult struct {
	Filename string `json:"filename"` // Tên file đã lưu (uuid + đuôi gốc)
	URL      string `json:"url"`      // URL công khai của file
}

// SaveImage lưu file ảnh với tên ngẫu nhiên, trả về tên file và URL công khai
func (s *StorageService) SaveImage(file *multipart.FileHeader) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !utility.Contains(allowedExtensions, ext) {
		return nil, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Định dạng file '%s' không được hỗ trợ", ext), common.StatusBadRequest, nil)
	}

	filename := uuid.New().String() + ext
	destination := filepath.Join(s.uploadDir, filename)

	src, err := file.Open()
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat,
			"Không thể đọc file upload", common.StatusBadRequest, err)
	}
	defer src.Close()

	dst, err := os.Create(destination)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer,
			"Không thể lưu file upload", common.StatusInternalServerError, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(destination)
		return nil, common.NewError(common.ErrCodeInternalServer,
			"Không thể lưu file upload", common.StatusInternalServerError, err)
	}

	return &UploadResult{
		Filename: filename,
		URL:      fmt.Sprintf("%s/uploads/%s", s.publicBaseURL, filename),
	}, nil
}

// DeleteImage xóa file ảnh theo tên. Tên file được chuẩn hóa bằng
// filepath.Base để không thể trỏ ra ngoài thư mục upload.
func (s *StorageService) DeleteImage(filename string) error {
	filename = filepath.Base(filename)
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		return common.NewError(common.ErrCodeValidationInput,
			"Tên file không hợp lệ", common.StatusBadRequest, nil)
	}

	path := filepath.Join(s.uploadDir, filename)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return common.ErrNotFound
		}
		return common.NewError(common.ErrCodeInternalServer,
			"Không thể xóa file", common.StatusInternalServerError, err)
	}
	return nil
}
