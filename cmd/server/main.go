package main

import (
	"fmt"

	"shop_commerce/internal/database"
	"shop_commerce/internal/global"
	"shop_commerce/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app, err := InitFiberApp()
	log := logger.GetAppLogger()
	if err != nil {
		log.Fatalf("Error initializing Fiber app: %v", err)
	}

	cfg := global.MongoDB_ServerConfig
	log.WithField("address", cfg.Address).Info("Starting Fiber server")

	if err := app.Listen(cfg.Address); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục (config, validator, kết nối MongoDB)
	InitGlobal()

	// Khởi tạo registry collections và indexes
	InitRegistry()

	defer database.CloseInstance(global.MongoDB_Session)

	// Chạy Fiber server trên main thread
	main_thread()
}
