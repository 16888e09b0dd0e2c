package utils

// IndexOf returns the position of item in slice, or -1.
func IndexOf[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return IndexOf(slice, item) >= 0
}
