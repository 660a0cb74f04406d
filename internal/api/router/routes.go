// Package router quản lý việc định tuyến cho API
package router

import (
	"github.com/gofiber/fiber/v3"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/middleware"
)

// ResourceHandler định nghĩa interface cho các handler CRUD của một resource
type ResourceHandler interface {
	List(c fiber.Ctx) error
	GetById(c fiber.Ctx) error
	Create(c fiber.Ctx) error
	Update(c fiber.Ctx) error
	Delete(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// ResourceConfig cấu hình các operation được phép cho mỗi resource
type ResourceConfig struct {
	List    bool // GET /api/<resource>
	GetById bool // GET /api/<resource>/:id
	Create  bool // POST /api/<resource>
	Update  bool // PUT /api/<resource>/:id
	Delete  bool // DELETE /api/<resource>/:id

	// AdminMutations yêu cầu đăng nhập với vai trò admin
	// cho các thao tác ghi (Create/Update/Delete)
	AdminMutations bool

	// AdminReads yêu cầu admin cho cả thao tác đọc (List/GetById).
	// Dùng cho dữ liệu nhạy cảm như đơn hàng (tên, SĐT, địa chỉ khách).
	AdminReads bool

	// PublicCreate mở Create cho mọi người dù AdminMutations bật.
	// Dùng cho luồng đặt hàng: khách tạo đơn, chỉ admin quản lý đơn.
	PublicCreate bool
}

// Config dùng chung cho các resource
var (
	// ReadOnlyConfig chỉ cho phép đọc
	ReadOnlyConfig = ResourceConfig{
		List: true, GetById: true,
		Create: false, Update: false, Delete: false,
	}

	// PublicReadAdminWriteConfig: đọc công khai, ghi yêu cầu admin
	PublicReadAdminWriteConfig = ResourceConfig{
		List: true, GetById: true,
		Create: true, Update: true, Delete: true,
		AdminMutations: true,
	}

	// CheckoutConfig: khách tạo công khai (đặt hàng không cần đăng nhập),
	// đọc và sửa/xóa chỉ dành cho admin
	CheckoutConfig = ResourceConfig{
		List: true, GetById: true,
		Create: true, Update: true, Delete: true,
		AdminMutations: true,
		AdminReads:     true,
		PublicCreate:   true,
	}
)

// AdminMiddlewares là chuỗi middleware cho các route chỉ dành cho admin
func AdminMiddlewares() []fiber.Handler {
	return []fiber.Handler{middleware.AuthRequired, middleware.AdminRequired}
}

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{Base: "/api"}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() method.
//
// LƯU Ý: Fiber v3 không gọi middleware khi truyền trực tiếp vào route
// (router.Get(path, middleware, handler)). Phải tạo group và đăng ký
// middleware bằng .Use() như hàm này làm. Mọi route mới trong project
// đều phải đi qua hàm này.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Middleware chỉ áp dụng cho các routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Path tương đối vì prefix đã nằm trong group
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterResourceRoutes đăng ký các route CRUD chuẩn REST cho một resource.
// Dùng từ domain router.
func (r *Router) RegisterResourceRoutes(router fiber.Router, prefix string, h ResourceHandler, config ResourceConfig) {
	var mutationMiddlewares []fiber.Handler
	if config.AdminMutations {
		mutationMiddlewares = AdminMiddlewares()
	}
	var readMiddlewares []fiber.Handler
	if config.AdminReads {
		readMiddlewares = AdminMiddlewares()
	}

	// Create công khai phải đăng ký TRƯỚC các route gắn middleware cùng
	// prefix: .Use() áp theo prefix cho mọi method đứng sau nó trong stack
	if config.Create && config.PublicCreate {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/", nil, basehandler.SafeHandler(h.Create))
	}

	// Read operations
	if config.List {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/", readMiddlewares, basehandler.SafeHandler(h.List))
	}
	if config.GetById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/:id", readMiddlewares, basehandler.SafeHandler(h.GetById))
	}

	// Write operations
	if config.Create && !config.PublicCreate {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/", mutationMiddlewares, basehandler.SafeHandler(h.Create))
	}
	if config.Update {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/:id", mutationMiddlewares, basehandler.SafeHandler(h.Update))
	}
	if config.Delete {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/:id", mutationMiddlewares, basehandler.SafeHandler(h.Delete))
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export)
type RegisterFunc func(api fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(api, r); err != nil {
			return err
		}
	}
	return nil
}
