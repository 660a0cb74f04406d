package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_commerce/config"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

func newTestService(t *testing.T) *StorageService {
	t.Helper()
	global.MongoDB_ServerConfig = &config.Configuration{
		UploadDir:     t.TempDir(),
		PublicBaseURL: "http://localhost:8080/",
	}
	s, err := NewStorageService()
	require.NoError(t, err)
	return s
}

func makeFileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("data"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestSaveImage_LuuFileVaTraVeURL(t *testing.T) {
	s := newTestService(t)

	result, err := s.SaveImage(makeFileHeader(t, "anh-goc.PNG"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(result.Filename, ".png"))
	assert.Equal(t, "http://localhost:8080/uploads/"+result.Filename, result.URL)

	_, statErr := os.Stat(filepath.Join(s.uploadDir, result.Filename))
	assert.NoError(t, statErr)
}

func TestSaveImage_DuoiFileKhongDuocHoTro(t *testing.T) {
	s := newTestService(t)

	_, err := s.SaveImage(makeFileHeader(t, "script.exe"))
	require.Error(t, err)

	var customErr *common.Error
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, common.StatusBadRequest, customErr.StatusCode)
}

func TestDeleteImage_FileTonTai(t *testing.T) {
	s := newTestService(t)

	path := filepath.Join(s.uploadDir, "anh.png")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	require.NoError(t, s.DeleteImage("anh.png"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteImage_FileKhongTonTai(t *testing.T) {
	s := newTestService(t)

	err := s.DeleteImage("khong-co.png")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestDeleteImage_ChanPathTraversal(t *testing.T) {
	s := newTestService(t)

	// Tên file bị chuẩn hóa bằng filepath.Base, chỉ xóa được trong uploadDir
	outside := filepath.Join(filepath.Dir(s.uploadDir), "ngoai.png")
	require.NoError(t, os.WriteFile(outside, []byte("data"), 0644))
	defer os.Remove(outside)

	err := s.DeleteImage("../ngoai.png")
	// File ngoài thư mục không bị đụng tới
	assert.True(t, errors.Is(err, common.ErrNotFound))
	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestPublicBaseURLBoDauGachCuoi(t *testing.T) {
	s := newTestService(t)
	assert.Equal(t, "http://localhost:8080", s.publicBaseURL)
}
