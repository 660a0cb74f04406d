package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Resource cung cấp các lời gọi CRUD chuẩn cho một entity
type Resource struct {
	client *Client
	base   string
}

// GetAll gọi GET /api/<entity> với filter và phân trang qua query params
func (r Resource) GetAll(ctx context.Context, params url.Values) *Envelope {
	return r.client.do(ctx, http.MethodGet, r.base, params, nil)
}

// GetById gọi GET /api/<entity>/:id
func (r Resource) GetById(ctx context.Context, id string) *Envelope {
	return r.client.do(ctx, http.MethodGet, r.base+"/"+url.PathEscape(id), nil, nil)
}

// Create gọi POST /api/<entity>
func (r Resource) Create(ctx context.Context, input interface{}) *Envelope {
	return r.client.do(ctx, http.MethodPost, r.base, nil, input)
}

// Update gọi PUT /api/<entity>/:id
func (r Resource) Update(ctx context.Context, id string, input interface{}) *Envelope {
	return r.client.do(ctx, http.MethodPut, r.base+"/"+url.PathEscape(id), nil, input)
}

// Delete gọi DELETE /api/<entity>/:id
func (r Resource) Delete(ctx context.Context, id string) *Envelope {
	return r.client.do(ctx, http.MethodDelete, r.base+"/"+url.PathEscape(id), nil, nil)
}

// Product trả về client cho entity sản phẩm
func (c *Client) Product() Resource {
	return Resource{client: c, base: "/api/product"}
}

// Color trả về client cho entity màu sắc
func (c *Client) Color() Resource {
	return Resource{client: c, base: "/api/color"}
}

// ProductColor trả về client cho entity bộ ảnh theo màu
func (c *Client) ProductColor() Resource {
	return Resource{client: c, base: "/api/product-color"}
}

// Stock trả về client cho entity tồn kho
func (c *Client) Stock() Resource {
	return Resource{client: c, base: "/api/stock"}
}

// Order trả về client cho entity đơn hàng
func (c *Client) Order() Resource {
	return Resource{client: c, base: "/api/order"}
}

// Banner trả về client cho entity banner
func (c *Client) Banner() Resource {
	return Resource{client: c, base: "/api/banner"}
}

// CategoryAPI bổ sung các view dẫn xuất của danh mục
type CategoryAPI struct {
	Resource
}

// Category trả về client cho entity danh mục
func (c *Client) Category() CategoryAPI {
	return CategoryAPI{Resource{client: c, base: "/api/category"}}
}

// Children gọi GET /api/category/children. parentID rỗng lấy danh mục gốc.
func (a CategoryAPI) Children(ctx context.Context, parentID string) *Envelope {
	params := url.Values{}
	if parentID != "" {
		params.Set("parentId", parentID)
	}
	return a.client.do(ctx, http.MethodGet, a.base+"/children", params, nil)
}

// Tree gọi GET /api/category/tree
func (a CategoryAPI) Tree(ctx context.Context) *Envelope {
	return a.client.do(ctx, http.MethodGet, a.base+"/tree", nil, nil)
}

// ProductItemAPI bổ sung lookup theo slug
type ProductItemAPI struct {
	Resource
}

// ProductItem trả về client cho entity phiên bản sản phẩm
func (c *Client) ProductItem() ProductItemAPI {
	return ProductItemAPI{Resource{client: c, base: "/api/product-item"}}
}

// BySlug gọi GET /api/product-item/slug?slug=
func (a ProductItemAPI) BySlug(ctx context.Context, slug string) *Envelope {
	params := url.Values{}
	params.Set("slug", slug)
	return a.client.do(ctx, http.MethodGet, a.base+"/slug", params, nil)
}

// OrderItemAPI bổ sung lookup theo đơn hàng
type OrderItemAPI struct {
	Resource
}

// OrderItem trả về client cho entity dòng hàng
func (c *Client) OrderItem() OrderItemAPI {
	return OrderItemAPI{Resource{client: c, base: "/api/order-item"}}
}

// ByOrder gọi GET /api/order-item/by-order/:orderId
func (a OrderItemAPI) ByOrder(ctx context.Context, orderID string) *Envelope {
	return a.client.do(ctx, http.MethodGet, a.base+"/by-order/"+url.PathEscape(orderID), nil, nil)
}

// AuthAPI gọi các endpoint đăng ký, đăng nhập và profile
type AuthAPI struct {
	client *Client
}

// Auth trả về client cho các endpoint xác thực
func (c *Client) Auth() AuthAPI {
	return AuthAPI{client: c}
}

// Register gọi POST /api/auth/register
func (a AuthAPI) Register(ctx context.Context, input interface{}) *Envelope {
	return a.client.do(ctx, http.MethodPost, "/api/auth/register", nil, input)
}

// Login gọi POST /api/auth/login
func (a AuthAPI) Login(ctx context.Context, input interface{}) *Envelope {
	return a.client.do(ctx, http.MethodPost, "/api/auth/login", nil, input)
}

// Profile gọi GET /api/auth/profile (yêu cầu token)
func (a AuthAPI) Profile(ctx context.Context) *Envelope {
	return a.client.do(ctx, http.MethodGet, "/api/auth/profile", nil, nil)
}

// CartAPI gọi các endpoint giỏ hàng (tất cả yêu cầu token)
type CartAPI struct {
	client *Client
}

// Cart trả về client cho giỏ hàng
func (c *Client) Cart() CartAPI {
	return CartAPI{client: c}
}

// Get gọi GET /api/cart
func (a CartAPI) Get(ctx context.Context) *Envelope {
	return a.client.do(ctx, http.MethodGet, "/api/cart", nil, nil)
}

// AddItems gọi POST /api/cart/items
func (a CartAPI) AddItems(ctx context.Context, input interface{}) *Envelope {
	return a.client.do(ctx, http.MethodPost, "/api/cart/items", nil, input)
}

// RemoveItem gọi DELETE /api/cart/items?itemId=&colorName=
func (a CartAPI) RemoveItem(ctx context.Context, itemID string, colorName string) *Envelope {
	params := url.Values{}
	params.Set("itemId", itemID)
	params.Set("colorName", colorName)
	return a.client.do(ctx, http.MethodDelete, "/api/cart/items", params, nil)
}

// Clear gọi DELETE /api/cart
func (a CartAPI) Clear(ctx context.Context) *Envelope {
	return a.client.do(ctx, http.MethodDelete, "/api/cart", nil, nil)
}

// ImageAPI gọi các endpoint upload/xóa ảnh (yêu cầu token admin)
type ImageAPI struct {
	client *Client
}

// Image trả về client cho storage ảnh
func (c *Client) Image() ImageAPI {
	return ImageAPI{client: c}
}

// Upload gọi POST /api/image/upload với file theo multipart form field "image"
func (a ImageAPI) Upload(ctx context.Context, filename string, content io.Reader) *Envelope {
	return a.client.upload(ctx, "/api/image/upload", "image", filename, content)
}

// Delete gọi DELETE /api/image/delete?filename=
func (a ImageAPI) Delete(ctx context.Context, filename string) *Envelope {
	params := url.Values{}
	params.Set("filename", filename)
	return a.client.do(ctx, http.MethodDelete, "/api/image/delete", params, nil)
}
