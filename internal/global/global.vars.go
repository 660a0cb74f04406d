package global

import (
	"shop_commerce/config"
	"shop_commerce/internal/registry"

	validator "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng
	Categories    string // Tên collection cho danh mục (bao gồm cả danh mục con qua parentId)
	Products      string // Tên collection cho sản phẩm
	ProductItems  string // Tên collection cho phiên bản sản phẩm (product item)
	Colors        string // Tên collection cho màu sắc
	ProductColors string // Tên collection cho ảnh sản phẩm theo màu
	Stocks        string // Tên collection cho tồn kho
	Orders        string // Tên collection cho đơn hàng
	OrderItems    string // Tên collection cho dòng đơn hàng
	Banners       string // Tên collection cho banner
	Carts         string // Tên collection cho giỏ hàng
}

// Các biến toàn cục
var Validate *validator.Validate                                         // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                        // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                           // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
