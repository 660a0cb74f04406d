package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_commerce/config"
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

func makeToken(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := TokenClaims{
		UserID: "507f1f77bcf86cd799439011",
		Email:  "test@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	group := app.Group("/protected")
	for _, h := range handlers {
		group.Use(h)
	}
	group.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals(LocalUserID),
			"role":   c.Locals(LocalUserRole),
		})
	})
	return app
}

func request(t *testing.T, app *fiber.App, authHeader string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", "/protected/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
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

func TestAuthRequired_ThieuToken(t *testing.T) {
	app := newTestApp(AuthRequired)

	statusCode, data := request(t, app, "")

	assert.Equal(t, 401, statusCode)
	assert.Equal(t, false, data["success"])
}

func TestAuthRequired_TokenRac(t *testing.T) {
	app := newTestApp(AuthRequired)

	statusCode, data := request(t, app, "Bearer khong-phai-jwt")

	assert.Equal(t, 401, statusCode)
	assert.Equal(t, false, data["success"])
}

func TestAuthRequired_TokenHetHan(t *testing.T) {
	app := newTestApp(AuthRequired)
	token := makeToken(t, "user", -time.Hour)

	statusCode, data := request(t, app, "Bearer "+token)

	assert.Equal(t, 401, statusCode)
	assert.Equal(t, "Phiên đăng nhập đã hết hạn", data["message"])
}

func TestAuthRequired_TokenHopLe(t *testing.T) {
	app := newTestApp(AuthRequired)
	token := makeToken(t, "user", time.Hour)

	statusCode, data := request(t, app, "Bearer "+token)

	assert.Equal(t, 200, statusCode)
	assert.Equal(t, "507f1f77bcf86cd799439011", data["userId"])
	assert.Equal(t, "user", data["role"])
}

func TestAdminRequired_RoleUser(t *testing.T) {
	app := newTestApp(AuthRequired, AdminRequired)
	token := makeToken(t, "user", time.Hour)

	statusCode, data := request(t, app, "Bearer "+token)

	assert.Equal(t, 403, statusCode)
	assert.Equal(t, "Chỉ quản trị viên mới được thực hiện thao tác này", data["message"])
}

func TestAdminRequired_RoleAdmin(t *testing.T) {
	app := newTestApp(AuthRequired, AdminRequired)
	token := makeToken(t, "admin", time.Hour)

	statusCode, data := request(t, app, "Bearer "+token)

	assert.Equal(t, 200, statusCode)
	assert.Equal(t, "admin", data["role"])
}
