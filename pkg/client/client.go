// Package client cung cấp API client Go cho backend shop_commerce.
// Mọi lời gọi trả về đúng một envelope {success, data, message, status,
// pagination}: lỗi 4xx/5xx từ server được trả nguyên văn chứ không trở
// thành error; lỗi mạng hoặc phản hồi sai định dạng được tổng hợp thành
// envelope lỗi để code phía trên không phải phân biệt lỗi transport với
// lỗi nghiệp vụ.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Pagination là thông tin phân trang trên các envelope danh sách
type Pagination struct {
	Page       int64 `json:"page"`
	PageSize   int64 `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// Envelope là response chuẩn của mọi endpoint
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Status     int             `json:"status"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// DecodeData giải mã phần data của envelope vào v
func (e *Envelope) DecodeData(v interface{}) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// Client gọi API của backend shop_commerce
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option tùy biến Client khi khởi tạo
type Option func(*Client)

// WithHTTPClient thay http.Client mặc định
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithToken đặt sẵn JWT cho mọi request
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New tạo Client trỏ đến baseURL (vd "http://localhost:8080")
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken đặt JWT cho các request tiếp theo (sau khi login)
func (c *Client) SetToken(token string) {
	c.token = token
}

func failureEnvelope(status int, message string) *Envelope {
	return &Envelope{
		Success: false,
		Data:    json.RawMessage("null"),
		Message: message,
		Status:  status,
	}
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body interface{}) *Envelope {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return failureEnvelope(http.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return failureEnvelope(http.StatusBadRequest, "Yêu cầu không hợp lệ")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req)
}

func (c *Client) send(req *http.Request) *Envelope {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failureEnvelope(http.StatusServiceUnavailable, "Không thể kết nối đến máy chủ")
	}
	defer resp.Body.Close()

	var envelope Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return failureEnvelope(http.StatusInternalServerError, "Phản hồi từ máy chủ không đúng định dạng")
	}
	if envelope.Status == 0 {
		envelope.Status = resp.StatusCode
	}
	return &envelope
}

// upload gửi một file theo multipart/form-data (dùng cho upload ảnh)
func (c *Client) upload(ctx context.Context, path string, field string, filename string, content io.Reader) *Envelope {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return failureEnvelope(http.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}
	if _, err := io.Copy(part, content); err != nil {
		return failureEnvelope(http.StatusBadRequest, "Không thể đọc file upload")
	}
	if err := writer.Close(); err != nil {
		return failureEnvelope(http.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return failureEnvelope(http.StatusBadRequest, "Yêu cầu không hợp lệ")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req)
}
