// Package database quản lý kết nối đến MongoDB
package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"shop_commerce/internal/logger"
)

// GetInstance khởi tạo kết nối MongoDB với connection pool và kiểm tra bằng ping
func GetInstance(uri string) (*mongo.Client, error) {
	log := logger.GetAppLogger()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(30 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.WithError(err).Error("Không thể kết nối đến MongoDB")
		return nil, err
	}

	// Ping để xác nhận kết nối thành công
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.WithError(err).Error("Không thể ping MongoDB")
		return nil, err
	}

	log.Info("Kết nối MongoDB thành công")
	return client, nil
}

// CloseInstance đóng kết nối MongoDB
func CloseInstance(client *mongo.Client) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.GetErrorLogger().WithError(err).Error("Lỗi khi đóng kết nối MongoDB")
		return
	}
	logger.GetAppLogger().Info("Đã đóng kết nối MongoDB")
}
