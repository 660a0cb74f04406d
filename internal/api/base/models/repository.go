// Package basemodels chứa các model dùng chung cho tầng service
package basemodels

// Pagination mô tả thông tin phân trang trả về cùng danh sách
type Pagination struct {
	Page       int64 `json:"page" bson:"page"`             // Trang hiện tại (bắt đầu từ 1)
	PageSize   int64 `json:"pageSize" bson:"pageSize"`     // Số phần tử mỗi trang
	Total      int64 `json:"total" bson:"total"`           // Tổng số phần tử khớp filter
	TotalPages int64 `json:"totalPages" bson:"totalPages"` // Tổng số trang (0 khi không có dữ liệu)
}

// NewPagination tính thông tin phân trang từ tổng số phần tử.
// TotalPages làm tròn lên, bằng 0 khi không có dữ liệu.
func NewPagination(page int64, pageSize int64, total int64) Pagination {
	var totalPages int64
	if total > 0 && pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PaginateResult chứa kết quả truy vấn có phân trang
type PaginateResult[T any] struct {
	Pagination        // Thông tin phân trang
	Items      []T    `json:"items" bson:"items"` // Danh sách phần tử của trang hiện tại
}

// UpdateData mô tả các thao tác update MongoDB.
// Các field nil sẽ không được đưa vào câu lệnh update.
type UpdateData struct {
	Set      map[string]interface{} `bson:"$set,omitempty"`      // Đặt giá trị field
	Unset    map[string]interface{} `bson:"$unset,omitempty"`    // Xóa field
	Push     map[string]interface{} `bson:"$push,omitempty"`     // Thêm phần tử vào mảng
	AddToSet map[string]interface{} `bson:"$addToSet,omitempty"` // Thêm phần tử vào mảng nếu chưa có
}
