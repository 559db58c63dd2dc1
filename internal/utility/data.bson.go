package utility

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển struct sang map[string]interface{} qua BSON marshal/unmarshal.
// Dùng bởi base service và base handler để thêm/lọc field trước khi ghi xuống MongoDB.
func ToMap(s interface{}) (map[string]interface{}, error) {
	val := reflect.ValueOf(s)
	var toMarshal interface{} = s

	// Nếu là pointer, marshal struct bên trong
	if val.Kind() == reflect.Ptr && !val.IsNil() {
		toMarshal = val.Elem().Interface()
	}

	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(toMarshal)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	if err := bson.Unmarshal(raw, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, nil
}
