package router

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_commerce/config"
	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/middleware"
	"shop_commerce/internal/global"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	global.MongoDB_ServerConfig = &config.Configuration{
		JwtSecret:      testSecret,
		JwtExpireHours: 1,
	}
	m.Run()
}

func makeToken(t *testing.T, role string) string {
	t.Helper()
	claims := middleware.TokenClaims{
		UserID: "507f1f77bcf86cd799439011",
		Email:  "test@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// fakeResourceHandler trả về envelope thành công cho mọi operation
type fakeResourceHandler struct{}

func (fakeResourceHandler) List(c fiber.Ctx) error {
	return basehandler.HandleResponse(c, []string{}, nil)
}

func (fakeResourceHandler) GetById(c fiber.Ctx) error {
	return basehandler.HandleResponse(c, fiber.Map{"id": c.Params("id")}, nil)
}

func (fakeResourceHandler) Create(c fiber.Ctx) error {
	return basehandler.HandleCreated(c, fiber.Map{"created": true}, nil)
}

func (fakeResourceHandler) Update(c fiber.Ctx) error {
	return basehandler.HandleResponse(c, fiber.Map{"updated": true}, nil)
}

func (fakeResourceHandler) Delete(c fiber.Ctx) error {
	return basehandler.HandleDeleted(c, nil)
}

func newTestApp(config ResourceConfig) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	r := NewRouter(app)
	r.RegisterResourceRoutes(api, "/order", fakeResourceHandler{}, config)
	return app
}

func request(t *testing.T, app *fiber.App, method string, target string, token string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &data))
	return resp.StatusCode, data
}

func TestCheckoutConfig_KhachTaoDonKhongCanDangNhap(t *testing.T) {
	app := newTestApp(CheckoutConfig)

	statusCode, data := request(t, app, "POST", "/api/order/", "")

	assert.Equal(t, 201, statusCode)
	assert.Equal(t, true, data["success"])
}

func TestCheckoutConfig_UserThuongVanTaoDuocDon(t *testing.T) {
	app := newTestApp(CheckoutConfig)
	token := makeToken(t, "user")

	statusCode, data := request(t, app, "POST", "/api/order/", token)

	assert.Equal(t, 201, statusCode)
	assert.Equal(t, true, data["success"])
}

func TestCheckoutConfig_DocDanhSachDonYeuCauAdmin(t *testing.T) {
	app := newTestApp(CheckoutConfig)

	statusCode, data := request(t, app, "GET", "/api/order/", "")
	assert.Equal(t, 401, statusCode)
	assert.Equal(t, false, data["success"])

	statusCode, data = request(t, app, "GET", "/api/order/", makeToken(t, "user"))
	assert.Equal(t, 403, statusCode)
	assert.Equal(t, false, data["success"])

	statusCode, data = request(t, app, "GET", "/api/order/", makeToken(t, "admin"))
	assert.Equal(t, 200, statusCode)
	assert.Equal(t, true, data["success"])
}

func TestCheckoutConfig_SuaXoaDonYeuCauAdmin(t *testing.T) {
	app := newTestApp(CheckoutConfig)

	statusCode, _ := request(t, app, "PUT", "/api/order/507f1f77bcf86cd799439011", "")
	assert.Equal(t, 401, statusCode)

	statusCode, _ = request(t, app, "DELETE", "/api/order/507f1f77bcf86cd799439011", makeToken(t, "user"))
	assert.Equal(t, 403, statusCode)

	statusCode, _ = request(t, app, "PUT", "/api/order/507f1f77bcf86cd799439011", makeToken(t, "admin"))
	assert.Equal(t, 200, statusCode)
}

func TestPublicReadAdminWrite_DocCongKhaiGhiYeuCauAdmin(t *testing.T) {
	app := newTestApp(PublicReadAdminWriteConfig)

	statusCode, data := request(t, app, "GET", "/api/order/", "")
	assert.Equal(t, 200, statusCode)
	assert.Equal(t, true, data["success"])

	statusCode, _ = request(t, app, "POST", "/api/order/", "")
	assert.Equal(t, 401, statusCode)

	statusCode, _ = request(t, app, "POST", "/api/order/", makeToken(t, "admin"))
	assert.Equal(t, 201, statusCode)
}
