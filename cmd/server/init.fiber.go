package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"

	authrouter "shop_commerce/internal/api/auth/router"
	bannerrouter "shop_commerce/internal/api/banner/router"
	basehandler "shop_commerce/internal/api/base/handler"
	cartrouter "shop_commerce/internal/api/cart/router"
	catalogrouter "shop_commerce/internal/api/catalog/router"
	orderrouter "shop_commerce/internal/api/order/router"
	"shop_commerce/internal/api/router"
	storagerouter "shop_commerce/internal/api/storage/router"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
	"shop_commerce/internal/logger"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp() (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:       "Shop Commerce API",
		ServerHeader:  "Shop Commerce API",
		StrictRouting: false,
		CaseSensitive: true,
		UnescapePath:  true,

		BodyLimit:       10 * 1024 * 1024, // Max size của request body (10MB)
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		// Lỗi lọt ra ngoài handler (routing, body limit...) cũng phải trả về
		// đúng envelope duy nhất của API
		ErrorHandler: func(c fiber.Ctx, err error) error {
			statusCode := common.StatusInternalServerError
			message := common.MsgInternalError

			if e, ok := err.(*fiber.Error); ok {
				statusCode = e.Code
				switch statusCode {
				case fiber.StatusNotFound:
					message = common.MsgNotFound
				case fiber.StatusMethodNotAllowed:
					message = "Phương thức không được hỗ trợ"
				case fiber.StatusRequestEntityTooLarge:
					message = "Dữ liệu gửi lên quá lớn"
				default:
					message = e.Message
				}
			}

			logger.WithRequest(c).WithField("status", statusCode).Warn(err.Error())
			return basehandler.JSONResponse(c, statusCode, basehandler.APIResponse{
				Success: false,
				Data:    nil,
				Message: message,
				Status:  statusCode,
			})
		},
	})

	// 1. Request ID - tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// 2. CORS - đặt trước các middleware khác để xử lý preflight requests
	corsOrigins := global.MongoDB_ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.MongoDB_ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 3. Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate limiting theo IP
	if global.MongoDB_ServerConfig.RateLimit_Enabled && global.MongoDB_ServerConfig.RateLimit_Max > 0 {
		rateLimitMax := global.MongoDB_ServerConfig.RateLimit_Max
		rateLimitWindow := time.Duration(global.MongoDB_ServerConfig.RateLimit_Window) * time.Second
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimitMax,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return basehandler.JSONResponse(c, common.StatusTooManyRequests, basehandler.APIResponse{
					Success: false,
					Data:    nil,
					Message: "Quá nhiều yêu cầu, vui lòng thử lại sau",
					Status:  common.StatusTooManyRequests,
				})
			},
			Next: func(c fiber.Ctx) bool {
				// Bỏ qua health check và preflight requests
				return c.Path() == "/health" || c.Method() == "OPTIONS"
			},
		}))
		logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds",
			rateLimitMax, global.MongoDB_ServerConfig.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limiting disabled")
	}

	// 5. Recover - chốt chặn cuối cho panic lọt qua SafeHandler
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", e).Error("Panic recovered")
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))

	// Serve file upload (ảnh sản phẩm, banner)
	app.Use("/uploads", static.New(global.MongoDB_ServerConfig.UploadDir))

	// Health check
	app.Get("/health", func(c fiber.Ctx) error {
		return basehandler.HandleResponse(c, fiber.Map{"status": "ok"}, nil)
	})

	// Đăng ký route của tất cả các domain
	if err := router.SetupRoutes(app,
		authrouter.Register,
		catalogrouter.Register,
		orderrouter.Register,
		bannerrouter.Register,
		cartrouter.Register,
		storagerouter.Register,
	); err != nil {
		return nil, err
	}

	return app, nil
}
