package basehandler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "shop_commerce/internal/api/base/models"
	"shop_commerce/internal/common"
)

type testDoc struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

type testCreateInput struct {
	Name string `json:"name"`
}

func (input testCreateInput) ToModel() testDoc {
	return testDoc{Name: input.Name}
}

type testUpdateInput struct {
	Name *string `json:"name"`
}

func (input testUpdateInput) ToUpdateData() basemodels.UpdateData {
	update := basemodels.UpdateData{Set: map[string]interface{}{}}
	if input.Name != nil {
		update.Set["name"] = *input.Name
	}
	return update
}

// fakeService ghi lại tham số nhận được và trả về kết quả dựng sẵn
type fakeService struct {
	paginateResult *basemodels.PaginateResult[testDoc]
	doc            testDoc
	err            error

	gotFilter   interface{}
	gotPage     int64
	gotPageSize int64
}

func (f *fakeService) InsertOne(ctx context.Context, data testDoc) (testDoc, error) {
	return f.doc, f.err
}

func (f *fakeService) InsertMany(ctx context.Context, data []testDoc) ([]testDoc, error) {
	return nil, f.err
}

func (f *fakeService) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (testDoc, error) {
	return f.doc, f.err
}

func (f *fakeService) FindOneById(ctx context.Context, id primitive.ObjectID) (testDoc, error) {
	return f.doc, f.err
}

func (f *fakeService) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]testDoc, error) {
	return nil, f.err
}

func (f *fakeService) FindWithPagination(ctx context.Context, filter interface{}, page int64, pageSize int64, opts *options.FindOptions) (*basemodels.PaginateResult[testDoc], error) {
	f.gotFilter = filter
	f.gotPage = page
	f.gotPageSize = pageSize
	return f.paginateResult, f.err
}

func (f *fakeService) UpdateById(ctx context.Context, id primitive.ObjectID, update basemodels.UpdateData) (testDoc, error) {
	return f.doc, f.err
}

func (f *fakeService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return f.err
}

func (f *fakeService) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return 0, f.err
}

func (f *fakeService) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return 0, f.err
}

func (f *fakeService) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	return false, f.err
}

func (f *fakeService) Collection() *mongo.Collection {
	return nil
}

// envelope dùng để decode response trong test
type envelope struct {
	Success    bool                   `json:"success"`
	Data       json.RawMessage        `json:"data"`
	Message    string                 `json:"message"`
	Status     int                    `json:"status"`
	Pagination *basemodels.Pagination `json:"pagination"`
}

func newTestHandler(fake *fakeService) *BaseHandler[testDoc, testCreateInput, testUpdateInput] {
	h := &BaseHandler[testDoc, testCreateInput, testUpdateInput]{}
	h.Service = fake
	h.FilterFields = []FilterField{
		{QueryParam: "name", BsonField: "name", Contains: true},
		{QueryParam: "slug", BsonField: "slug"},
		{QueryParam: "categoryId", BsonField: "categoryId", IsObjectID: true},
	}
	return h
}

func doRequest(t *testing.T, app *fiber.App, method string, target string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env
}

func TestList_EnvelopeVaPagination(t *testing.T) {
	fake := &fakeService{
		paginateResult: &basemodels.PaginateResult[testDoc]{
			Pagination: basemodels.NewPagination(2, 5, 12),
			Items:      []testDoc{{Name: "iPhone 15"}},
		},
	}
	h := newTestHandler(fake)

	app := fiber.New()
	app.Get("/test", h.List)

	statusCode, env := doRequest(t, app, "GET", "/test?page=2&pageSize=5")

	assert.Equal(t, 200, statusCode)
	assert.True(t, env.Success)
	assert.Equal(t, 200, env.Status)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(2), env.Pagination.Page)
	assert.Equal(t, int64(5), env.Pagination.PageSize)
	assert.Equal(t, int64(12), env.Pagination.Total)
	assert.Equal(t, int64(3), env.Pagination.TotalPages)

	// data là mảng items, không phải object bọc ngoài
	var items []testDoc
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "iPhone 15", items[0].Name)

	assert.Equal(t, int64(2), fake.gotPage)
	assert.Equal(t, int64(5), fake.gotPageSize)
}

func TestList_PaginationMacDinhKhiSaiDinhDang(t *testing.T) {
	fake := &fakeService{
		paginateResult: &basemodels.PaginateResult[testDoc]{
			Pagination: basemodels.NewPagination(1, 10, 0),
			Items:      []testDoc{},
		},
	}
	h := newTestHandler(fake)

	app := fiber.New()
	app.Get("/test", h.List)

	_, _ = doRequest(t, app, "GET", "/test?page=abc&pageSize=-5")

	assert.Equal(t, int64(1), fake.gotPage)
	assert.Equal(t, int64(10), fake.gotPageSize)
}

func TestList_BuildFilter(t *testing.T) {
	fake := &fakeService{
		paginateResult: &basemodels.PaginateResult[testDoc]{
			Pagination: basemodels.NewPagination(1, 10, 0),
			Items:      []testDoc{},
		},
	}
	h := newTestHandler(fake)

	app := fiber.New()
	app.Get("/test", h.List)

	categoryID := primitive.NewObjectID()
	_, _ = doRequest(t, app, "GET", "/test?name=iph&slug=iphone-15&categoryId="+categoryID.Hex())

	filter, ok := fake.gotFilter.(bson.M)
	require.True(t, ok)

	// Field dạng Contains dùng regex không phân biệt hoa thường
	assert.Equal(t, bson.M{"$regex": "iph", "$options": "i"}, filter["name"])
	// Field thường so khớp bằng
	assert.Equal(t, "iphone-15", filter["slug"])
	// Field ObjectID được convert trước khi query
	assert.Equal(t, categoryID, filter["categoryId"])
}

func TestList_BoQuaObjectIDSaiDinhDang(t *testing.T) {
	fake := &fakeService{
		paginateResult: &basemodels.PaginateResult[testDoc]{
			Pagination: basemodels.NewPagination(1, 10, 0),
			Items:      []testDoc{},
		},
	}
	h := newTestHandler(fake)

	app := fiber.New()
	app.Get("/test", h.List)

	_, _ = doRequest(t, app, "GET", "/test?categoryId=khong-hop-le")

	filter, ok := fake.gotFilter.(bson.M)
	require.True(t, ok)
	_, exists := filter["categoryId"]
	assert.False(t, exists)
}

func TestGetById_IDSaiDinhDang(t *testing.T) {
	h := newTestHandler(&fakeService{})

	app := fiber.New()
	app.Get("/test/:id", h.GetById)

	statusCode, env := doRequest(t, app, "GET", "/test/abc")

	assert.Equal(t, 400, statusCode)
	assert.False(t, env.Success)
	assert.Equal(t, 400, env.Status)
	assert.Equal(t, "null", string(env.Data))
	assert.Nil(t, env.Pagination)
}

func TestGetById_NotFound(t *testing.T) {
	h := newTestHandler(&fakeService{err: common.ErrNotFound})

	app := fiber.New()
	app.Get("/test/:id", h.GetById)

	statusCode, env := doRequest(t, app, "GET", "/test/"+primitive.NewObjectID().Hex())

	assert.Equal(t, 404, statusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "null", string(env.Data))
}

func TestDelete_TraVeDeletedTrue(t *testing.T) {
	h := newTestHandler(&fakeService{})

	app := fiber.New()
	app.Delete("/test/:id", h.Delete)

	statusCode, env := doRequest(t, app, "DELETE", "/test/"+primitive.NewObjectID().Hex())

	assert.Equal(t, 200, statusCode)
	assert.True(t, env.Success)

	var data map[string]bool
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data["deleted"])
}

func TestDelete_BiChanBoiThamChieu(t *testing.T) {
	inUse := common.NewError(common.ErrCodeBusinessOperation,
		"Không thể xóa màu vì còn 3 bộ ảnh sản phẩm đang sử dụng", common.StatusConflict, nil)
	h := newTestHandler(&fakeService{err: inUse})

	app := fiber.New()
	app.Delete("/test/:id", h.Delete)

	statusCode, env := doRequest(t, app, "DELETE", "/test/"+primitive.NewObjectID().Hex())

	assert.Equal(t, 409, statusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "Không thể xóa màu vì còn 3 bộ ảnh sản phẩm đang sử dụng", env.Message)
}

func TestSafeHandler_BatPanic(t *testing.T) {
	app := fiber.New()
	app.Get("/panic", SafeHandler(func(c fiber.Ctx) error {
		panic("boom")
	}))

	statusCode, env := doRequest(t, app, "GET", "/panic")

	assert.Equal(t, 500, statusCode)
	assert.False(t, env.Success)
	assert.Equal(t, 500, env.Status)
}
