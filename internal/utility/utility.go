package utility

import (
	"encoding/json"
)

// ConvertStruct chuyển dữ liệu giữa hai struct qua vòng marshal/unmarshal JSON.
// target phải là con trỏ; field được khớp theo json tag.
func ConvertStruct(source interface{}, target interface{}) (interface{}, error) {
	jsonData, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(jsonData, target); err != nil {
		return nil, err
	}

	return target, nil
}
