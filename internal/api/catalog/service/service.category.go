// Package service chứa logic nghiệp vụ của domain catalog
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "shop_commerce/internal/api/base/models"
	baseservice "shop_commerce/internal/api/base/service"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// CategoryService xử lý nghiệp vụ danh mục
type CategoryService struct {
	*baseservice.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !ok {
		return nil, common.NewError(common.ErrCodeDatabase, "Collection danh mục chưa được đăng ký", common.StatusInternalServerError, nil)
	}
	return &CategoryService{
		BaseServiceMongoImpl: baseservice.NewBaseServiceMongo[models.Category](collection),
	}, nil
}

// checkDuplicate kiểm tra trùng tên/slug với các danh mục khác (trừ excludeID)
func (s *CategoryService) checkDuplicate(ctx context.Context, name string, slug string, excludeID primitive.ObjectID) error {
	if name != "" {
		filter := bson.M{"name": name}
		if !excludeID.IsZero() {
			filter["_id"] = bson.M{"$ne": excludeID}
		}
		exists, err := s.DocumentExists(ctx, filter)
		if err != nil {
			return err
		}
		if exists {
			return common.NewError(common.ErrCodeDatabaseDuplicate, "Danh mục với tên này đã tồn tại", common.StatusConflict, nil)
		}
	}

	if slug != "" {
		filter := bson.M{"slug": slug}
		if !excludeID.IsZero() {
			filter["_id"] = bson.M{"$ne": excludeID}
		}
		exists, err := s.DocumentExists(ctx, filter)
		if err != nil {
			return err
		}
		if exists {
			return common.NewError(common.ErrCodeDatabaseDuplicate, "Danh mục với slug này đã tồn tại", common.StatusConflict, nil)
		}
	}
	return nil
}

// InsertOne tạo danh mục mới, kiểm tra trùng tên/slug trước khi chèn
func (s *CategoryService) InsertOne(ctx context.Context, data models.Category) (models.Category, error) {
	if err := s.checkDuplicate(ctx, data.Name, data.Slug, primitive.NilObjectID); err != nil {
		return models.Category{}, err
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById cập nhật danh mục, kiểm tra trùng tên/slug (trừ chính nó)
func (s *CategoryService) UpdateById(ctx context.Context, id primitive.ObjectID, update basemodels.UpdateData) (models.Category, error) {
	name, _ := update.Set["name"].(string)
	slug, _ := update.Set["slug"].(string)
	if err := s.checkDuplicate(ctx, name, slug, id); err != nil {
		return models.Category{}, err
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, update)
}

// DeleteById xóa danh mục, chặn khi còn sản phẩm hoặc danh mục con tham chiếu
func (s *CategoryService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	checks := []baseservice.RelationshipCheck{
		{
			CollectionName: global.MongoDB_ColNames.Products,
			FieldName:      "categoryId",
			ErrorMessage:   "Không thể xóa danh mục vì còn %d sản phẩm thuộc danh mục này",
		},
		{
			CollectionName: global.MongoDB_ColNames.Categories,
			FieldName:      "parentId",
			ErrorMessage:   "Không thể xóa danh mục vì còn %d danh mục con",
		},
	}
	if err := baseservice.CheckRelationshipExists(ctx, checks, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// checkBatchDuplicate kiểm tra trùng tên/slug trong nội bộ batch cha + con
func checkBatchDuplicate(parent models.Category, subs []models.Category) error {
	seenNames := map[string]bool{parent.Name: true}
	seenSlugs := map[string]bool{parent.Slug: true}
	for _, sub := range subs {
		if seenNames[sub.Name] {
			return common.NewError(common.ErrCodeDatabaseDuplicate, "Tên danh mục bị trùng trong danh sách gửi lên", common.StatusConflict, nil)
		}
		if seenSlugs[sub.Slug] {
			return common.NewError(common.ErrCodeDatabaseDuplicate, "Slug danh mục bị trùng trong danh sách gửi lên", common.StatusConflict, nil)
		}
		seenNames[sub.Name] = true
		seenSlugs[sub.Slug] = true
	}
	return nil
}

// CreateWithSubcategories tạo danh mục cha cùng các danh mục con trong một
// transaction: hoặc tất cả được tạo, hoặc không danh mục nào được tạo.
func (s *CategoryService) CreateWithSubcategories(ctx context.Context, parent models.Category, subs []models.Category) (models.Category, []models.Category, error) {
	var zero models.Category

	if err := checkBatchDuplicate(parent, subs); err != nil {
		return zero, nil, err
	}

	// Kiểm tra trùng với dữ liệu đã có trước khi mở transaction
	if err := s.checkDuplicate(ctx, parent.Name, parent.Slug, primitive.NilObjectID); err != nil {
		return zero, nil, err
	}
	for _, sub := range subs {
		if err := s.checkDuplicate(ctx, sub.Name, sub.Slug, primitive.NilObjectID); err != nil {
			return zero, nil, err
		}
	}

	session, err := s.Collection().Database().Client().StartSession()
	if err != nil {
		return zero, nil, common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	type txnResult struct {
		parent models.Category
		subs   []models.Category
	}

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		createdParent, err := s.BaseServiceMongoImpl.InsertOne(sc, parent)
		if err != nil {
			return nil, err
		}

		for i := range subs {
			parentID := createdParent.ID
			subs[i].ParentID = &parentID
		}
		createdSubs, err := s.InsertMany(sc, subs)
		if err != nil {
			return nil, err
		}
		return txnResult{parent: createdParent, subs: createdSubs}, nil
	})
	if err != nil {
		return zero, nil, common.ConvertMongoError(err)
	}

	created := result.(txnResult)
	return created.parent, created.subs, nil
}

// Children trả về các danh mục con trực tiếp của một danh mục.
// parentID = nil trả về các danh mục gốc.
func (s *CategoryService) Children(ctx context.Context, parentID *primitive.ObjectID) ([]models.Category, error) {
	var filter bson.M
	if parentID == nil {
		filter = bson.M{"parentId": bson.M{"$exists": false}}
	} else {
		filter = bson.M{"parentId": *parentID}
	}
	return s.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

// Tree trả về toàn bộ danh mục dưới dạng cây lồng nhau
func (s *CategoryService) Tree(ctx context.Context) ([]*models.CategoryNode, error) {
	categories, err := s.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}

	nodes := make(map[primitive.ObjectID]*models.CategoryNode, len(categories))
	for _, category := range categories {
		nodes[category.ID] = &models.CategoryNode{
			Category: category,
			Children: []*models.CategoryNode{},
		}
	}

	roots := make([]*models.CategoryNode, 0)
	for _, category := range categories {
		node := nodes[category.ID]
		if category.ParentID != nil {
			if parent, ok := nodes[*category.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}
