package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shop_commerce/internal/global"
	"shop_commerce/internal/logger"
)

// initCollectionNames gán tên các collection vào biến toàn cục
func initCollectionNames() {
	names := &global.MongoDB_ColNames
	names.Users = "users"
	names.Categories = "categories"
	names.Products = "products"
	names.ProductItems = "product_items"
	names.Colors = "colors"
	names.ProductColors = "product_colors"
	names.Stocks = "stocks"
	names.Orders = "orders"
	names.OrderItems = "order_items"
	names.Banners = "banners"
	names.Carts = "carts"
}

// InitRegistry đăng ký database và toàn bộ collections vào registry,
// đồng thời tạo các index cần thiết
func InitRegistry() {
	log := logger.GetAppLogger()
	initCollectionNames()

	cfg := global.MongoDB_ServerConfig
	db := global.MongoDB_Session.Database(cfg.MongoDB_DBName)
	if err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		log.Fatalf("Không thể đăng ký database: %v", err)
	}

	names := global.MongoDB_ColNames
	collectionNames := []string{
		names.Users,
		names.Categories,
		names.Products,
		names.ProductItems,
		names.Colors,
		names.ProductColors,
		names.Stocks,
		names.Orders,
		names.OrderItems,
		names.Banners,
		names.Carts,
	}
	for _, name := range collectionNames {
		if err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			log.Fatalf("Không thể đăng ký collection '%s': %v", name, err)
		}
	}

	ensureIndexes(db)
	log.WithField("collections", len(collectionNames)).Info("Registry collections initialized")
}

// ensureIndexes tạo các index unique cho natural keys và index tham chiếu.
// Pre-check ở tầng service cho thông báo thân thiện, index chặn race ghi.
func ensureIndexes(db *mongo.Database) {
	log := logger.GetAppLogger()
	names := global.MongoDB_ColNames

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	indexes := map[string][]mongo.IndexModel{
		names.Users: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		names.Categories: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "parentId", Value: 1}}},
		},
		names.Products: {
			{Keys: bson.D{{Key: "categoryId", Value: 1}}},
		},
		names.ProductItems: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "productId", Value: 1}}},
		},
		names.Colors: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		names.ProductColors: {
			{Keys: bson.D{{Key: "productItemId", Value: 1}, {Key: "colorName", Value: 1}}, Options: unique},
		},
		names.Stocks: {
			{Keys: bson.D{{Key: "productItemId", Value: 1}, {Key: "colorName", Value: 1}}, Options: unique},
		},
		names.OrderItems: {
			{Keys: bson.D{{Key: "orderId", Value: 1}}},
		},
		names.Carts: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
		},
	}

	for collectionName, models := range indexes {
		if _, err := db.Collection(collectionName).Indexes().CreateMany(ctx, models); err != nil {
			// Không dừng server vì index có thể đã tồn tại với cấu hình cũ
			log.WithError(err).Warnf("Không thể tạo index cho collection '%s'", collectionName)
		}
	}
}
