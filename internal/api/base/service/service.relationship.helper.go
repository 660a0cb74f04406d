package baseservice

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// RelationshipCheck mô tả một quan hệ cần kiểm tra trước khi xóa document.
// Nếu còn document trong CollectionName có FieldName trỏ đến giá trị cần xóa
// thì thao tác xóa bị chặn với lỗi 409.
type RelationshipCheck struct {
	CollectionName string // Tên collection chứa document tham chiếu
	FieldName      string // Tên field tham chiếu
	ErrorMessage   string // Thông báo lỗi, có thể chứa %d cho số lượng tham chiếu
	Optional       bool   // Nếu true, bỏ qua khi collection chưa được đăng ký
}

// CheckRelationshipExists kiểm tra các quan hệ tham chiếu trước khi xóa.
// Trả về lỗi 409 nếu còn document tham chiếu đến giá trị value.
func CheckRelationshipExists(ctx context.Context, checks []RelationshipCheck, value interface{}) error {
	for _, check := range checks {
		collection, ok := global.RegistryCollections.Get(check.CollectionName)
		if !ok {
			if check.Optional {
				continue
			}
			return common.NewError(common.ErrCodeDatabase,
				fmt.Sprintf("Collection '%s' chưa được đăng ký", check.CollectionName),
				common.StatusInternalServerError, nil)
		}

		count, err := collection.CountDocuments(ctx, bson.M{check.FieldName: value})
		if err != nil {
			return common.ConvertMongoError(err)
		}

		if count > 0 {
			message := check.ErrorMessage
			if message == "" {
				message = "Không thể xóa vì còn %d dữ liệu đang tham chiếu"
			}
			if strings.Contains(message, "%d") {
				message = fmt.Sprintf(message, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, message, common.StatusConflict, nil)
		}
	}
	return nil
}
