package main

import (
	"shop_commerce/config"
	"shop_commerce/internal/database"
	"shop_commerce/internal/global"
	"shop_commerce/internal/logger"
)

// InitGlobal khởi tạo các biến toàn cục: config, validator và kết nối MongoDB
func InitGlobal() {
	log := logger.GetAppLogger()

	cfg := config.NewConfig()
	if cfg == nil {
		log.Fatal("Không thể đọc cấu hình, kiểm tra config/env và GO_ENV")
	}
	global.MongoDB_ServerConfig = cfg

	global.InitValidator()

	client, err := database.GetInstance(cfg.MongoDB_ConnectionURI)
	if err != nil {
		log.Fatalf("Không thể kết nối MongoDB: %v", err)
	}
	global.MongoDB_Session = client
}
