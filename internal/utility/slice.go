package utility

// Contains báo item có xuất hiện trong slice hay không.
// Dùng cho các danh sách ngắn (operator filter cho phép, role, ...), không cần map.
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
