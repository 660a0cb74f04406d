// Package handler chứa các HTTP handler của domain auth
package handler

import (
	"github.com/gofiber/fiber/v3"

	basehandler "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/auth/dto"
	"shop_commerce/internal/api/auth/service"
	"shop_commerce/internal/api/middleware"
	"shop_commerce/internal/common"
	"shop_commerce/internal/utility"
)

// AuthHandler xử lý các request đăng ký, đăng nhập và thông tin cá nhân
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler tạo mới AuthHandler
func NewAuthHandler() (*AuthHandler, error) {
	userService, err := service.NewUserService()
	if err != nil {
		return nil, err
	}
	return &AuthHandler{userService: userService}, nil
}

// parseBody parse và validate JSON body
func parseBody(c fiber.Ctx, out interface{}) error {
	if err := c.Bind().Body(out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	return basehandler.ValidateStruct(out)
}

// Register đăng ký tài khoản mới
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var input dto.RegisterInput
	if err := parseBody(c, &input); err != nil {
		return basehandler.HandleError(c, err)
	}

	user, err := h.userService.Register(c.Context(), input)
	return basehandler.HandleCreated(c, user, err)
}

// Login đăng nhập, trả về JWT và thông tin người dùng
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var input dto.LoginInput
	if err := parseBody(c, &input); err != nil {
		return basehandler.HandleError(c, err)
	}

	result, err := h.userService.Login(c.Context(), input)
	return basehandler.HandleResponse(c, result, err)
}

// Profile trả về thông tin người dùng đang đăng nhập
func (h *AuthHandler) Profile(c fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)
	objectID := utility.String2ObjectID(userID)
	if objectID.IsZero() {
		return basehandler.HandleError(c, common.ErrTokenInvalid)
	}

	user, err := h.userService.FindOneById(c.Context(), objectID)
	return basehandler.HandleResponse(c, user, err)
}
