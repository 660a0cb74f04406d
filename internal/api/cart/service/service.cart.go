// Package service chứa logic nghiệp vụ của domain cart
package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "shop_commerce/internal/api/base/models"
	baseservice "shop_commerce/internal/api/base/service"
	"shop_commerce/internal/api/cart/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// CartService xử lý nghiệp vụ giỏ hàng
type CartService struct {
	*baseservice.BaseServiceMongoImpl[models.Cart]
}

// NewCartService tạo mới CartService
func NewCartService() (*CartService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Carts)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection giỏ hàng chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &CartService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.Cart](collection),
	}, nil
}

// GetOrCreateByUser trả về giỏ hàng của người dùng, tạo giỏ rỗng nếu chưa có
func (s *CartService) GetOrCreateByUser(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	cart, err := s.FindOne(ctx, bson.M{"userId": userID}, nil)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.Cart{}, err
	}
	return s.InsertOne(ctx, models.Cart{
		UserID: userID,
		Items:  []models.CartItem{},
	})
}

// AddItems gộp các dòng hàng mới vào giỏ của người dùng theo khóa
// (itemId, colorName) và lưu lại
func (s *CartService) AddItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) (models.Cart, error) {
	cart, err := s.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	merged := models.MergeItems(cart.Items, items)
	return s.UpdateById(ctx, cart.ID, basemodels.UpdateData{
		Set: map[string]interface{}{"items": merged},
	})
}

// RemoveItem xóa một dòng hàng khỏi giỏ theo khóa (itemId, colorName)
func (s *CartService) RemoveItem(ctx context.Context, userID primitive.ObjectID, itemID primitive.ObjectID, colorName string) (models.Cart, error) {
	cart, err := s.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}

	remaining := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ItemID == itemID && item.ColorName == colorName {
			continue
		}
		remaining = append(remaining, item)
	}

	return s.UpdateById(ctx, cart.ID, basemodels.UpdateData{
		Set: map[string]interface{}{"items": remaining},
	})
}

// Clear xóa toàn bộ dòng hàng trong giỏ của người dùng
func (s *CartService) Clear(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	cart, err := s.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return models.Cart{}, err
	}
	return s.UpdateById(ctx, cart.ID, basemodels.UpdateData{
		Set: map[string]interface{}{"items": []models.CartItem{}},
	})
}
