package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển một struct sang bson.M qua vòng marshal/unmarshal,
// giữ nguyên các bson tag của struct.
func ToMap(data interface{}) (bson.M, error) {
	bytes, err := bson.Marshal(data)
	if err != nil {
		return nil, err
	}

	var result bson.M
	if err := bson.Unmarshal(bytes, &result); err != nil {
		return nil, err
	}
	return result, nil
}
