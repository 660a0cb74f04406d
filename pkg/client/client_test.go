package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAll_EnvelopeVaPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/product", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":true,"data":[{"name":"iPhone 15"}],"message":"Thao tác thành công","status":200,"pagination":{"page":2,"pageSize":5,"total":12,"totalPages":3}}`)
	}))
	defer server.Close()

	c := New(server.URL)
	params := url.Values{}
	params.Set("page", "2")
	params.Set("pageSize", "5")

	env := c.Product().GetAll(context.Background(), params)

	assert.True(t, env.Success)
	assert.Equal(t, 200, env.Status)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(3), env.Pagination.TotalPages)

	var items []map[string]string
	require.NoError(t, env.DecodeData(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "iPhone 15", items[0]["name"])
}

func TestCreate_GuiBodyJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/color", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Đỏ", body["name"])

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"success":true,"data":{"name":"Đỏ"},"message":"Tạo mới thành công","status":201}`)
	}))
	defer server.Close()

	env := New(server.URL).Color().Create(context.Background(), map[string]string{"name": "Đỏ"})

	assert.True(t, env.Success)
	assert.Equal(t, 201, env.Status)
}

func TestLoiServer_TraVeEnvelopeNguyenVan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"success":false,"data":null,"message":"Màu sắc với tên này đã tồn tại","status":409}`)
	}))
	defer server.Close()

	env := New(server.URL).Color().Create(context.Background(), map[string]string{"name": "Đỏ"})

	assert.False(t, env.Success)
	assert.Equal(t, 409, env.Status)
	assert.Equal(t, "Màu sắc với tên này đã tồn tại", env.Message)
	assert.Equal(t, "null", string(env.Data))
}

func TestLoiMang_TongHopEnvelope503(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	env := New(server.URL).Product().GetAll(context.Background(), nil)

	assert.False(t, env.Success)
	assert.Equal(t, 503, env.Status)
	assert.Equal(t, "Không thể kết nối đến máy chủ", env.Message)
}

func TestPhanHoiSaiDinhDang_TongHopEnvelope500(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>502 Bad Gateway</html>`)
	}))
	defer server.Close()

	env := New(server.URL).Product().GetAll(context.Background(), nil)

	assert.False(t, env.Success)
	assert.Equal(t, 500, env.Status)
}

func TestToken_GuiKemHeaderAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		io.WriteString(w, `{"success":true,"data":{},"message":"Thao tác thành công","status":200}`)
	}))
	defer server.Close()

	c := New(server.URL)
	c.SetToken("jwt-token")

	env := c.Auth().Profile(context.Background())
	assert.True(t, env.Success)
}

func TestByOrder_DungDuongDan(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/order-item/by-order/507f1f77bcf86cd799439011", r.URL.Path)
		io.WriteString(w, `{"success":true,"data":[],"message":"Thao tác thành công","status":200}`)
	}))
	defer server.Close()

	env := New(server.URL).OrderItem().ByOrder(context.Background(), "507f1f77bcf86cd799439011")
	assert.True(t, env.Success)
}
