package basehandler

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shop_commerce/internal/common"
)

// List xử lý GET /api/<resource>: trả về danh sách có filter và phân trang
func (h *BaseHandler[T, C, U]) List(c fiber.Ctx) error {
	page, pageSize := h.ParsePagination(c)
	filter := h.BuildFilter(c)

	opts := options.Find()
	if h.DefaultSort != nil {
		opts.SetSort(h.DefaultSort)
	}

	result, err := h.Service.FindWithPagination(c.Context(), filter, page, pageSize, opts)
	if err != nil {
		return HandleError(c, err)
	}

	return JSONResponse(c, common.StatusOK, APIResponse{
		Success:    true,
		Data:       result.Items,
		Message:    common.MsgSuccess,
		Status:     common.StatusOK,
		Pagination: &result.Pagination,
	})
}

// GetById xử lý GET /api/<resource>/:id
func (h *BaseHandler[T, C, U]) GetById(c fiber.Ctx) error {
	id, err := h.ParseObjectID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	data, err := h.Service.FindOneById(c.Context(), id)
	return HandleResponse(c, data, err)
}

// Create xử lý POST /api/<resource>: validate input, chuyển sang model và chèn mới
func (h *BaseHandler[T, C, U]) Create(c fiber.Ctx) error {
	var input C
	if err := h.ParseRequestBody(c, &input); err != nil {
		return HandleError(c, err)
	}

	created, err := h.Service.InsertOne(c.Context(), input.ToModel())
	return HandleCreated(c, created, err)
}

// Update xử lý PUT /api/<resource>/:id: validate input và cập nhật các field được gửi lên
func (h *BaseHandler[T, C, U]) Update(c fiber.Ctx) error {
	id, err := h.ParseObjectID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	var input U
	if err := h.ParseRequestBody(c, &input); err != nil {
		return HandleError(c, err)
	}

	updated, err := h.Service.UpdateById(c.Context(), id, input.ToUpdateData())
	return HandleResponse(c, updated, err)
}

// Delete xử lý DELETE /api/<resource>/:id, trả về {deleted: true} khi thành công
func (h *BaseHandler[T, C, U]) Delete(c fiber.Ctx) error {
	id, err := h.ParseObjectID(c, "id")
	if err != nil {
		return HandleError(c, err)
	}

	return HandleDeleted(c, h.Service.DeleteById(c.Context(), id))
}
