// Package handler chứa các HTTP handler của domain catalog
package handler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/catalog/dto"
	"shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/api/catalog/service"
	"shop_commerce/internal/common"
)

// CategoryHandler xử lý các request liên quan đến danh mục
type CategoryHandler struct {
	basehandler.BaseHandler[models.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput]
	categoryService *service.CategoryService
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := service.NewCategoryService()
	if err != nil {
		return nil, err
	}

	h := &CategoryHandler{categoryService: categoryService}
	h.Service = categoryService
	h.FilterFields = []basehandler.FilterField{
		{QueryParam: "name", BsonField: "name", Contains: true},
		{QueryParam: "slug", BsonField: "slug"},
		{QueryParam: "parentId", BsonField: "parentId", IsObjectID: true},
	}
	h.DefaultSort = bson.D{{Key: "name", Value: 1}}
	return h, nil
}

// Create tạo danh mục mới. Nếu input chứa subcategories, toàn bộ cha + con
// được tạo trong một transaction.
func (h *CategoryHandler) Create(c fiber.Ctx) error {
	var input dto.CategoryCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return basehandler.HandleError(c, err)
	}

	if len(input.Subcategories) == 0 {
		created, err := h.categoryService.InsertOne(c.Context(), input.ToModel())
		return basehandler.HandleCreated(c, created, err)
	}

	parent, subs, err := h.categoryService.CreateWithSubcategories(c.Context(), input.ToModel(), input.SubcategoryModels())
	if err != nil {
		return basehandler.HandleError(c, err)
	}
	return basehandler.HandleCreated(c, fiber.Map{
		"category":      parent,
		"subcategories": subs,
	}, nil)
}

// Children trả về danh mục con trực tiếp của một danh mục.
// Không truyền parentId sẽ trả về các danh mục gốc.
func (h *CategoryHandler) Children(c fiber.Ctx) error {
	var parentID *primitive.ObjectID
	if value := c.Query("parentId"); value != "" {
		objectID, err := primitive.ObjectIDFromHex(value)
		if err != nil {
			return basehandler.HandleError(c, common.NewError(common.ErrCodeValidationFormat,
				"Tham số parentId không đúng định dạng MongoDB ObjectID", common.StatusBadRequest, err))
		}
		parentID = &objectID
	}

	children, err := h.categoryService.Children(c.Context(), parentID)
	return basehandler.HandleResponse(c, children, err)
}

// Tree trả về toàn bộ danh mục dưới dạng cây lồng nhau
func (h *CategoryHandler) Tree(c fiber.Ctx) error {
	tree, err := h.categoryService.Tree(c.Context())
	return basehandler.HandleResponse(c, tree, err)
}
