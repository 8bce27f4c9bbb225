package utils

// FindIndex returns the position of item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// FirstDuplicate returns the first value that appears more than once in slice.
func FirstDuplicate[T comparable](slice []T) (T, bool) {
	seen := make(map[T]struct{}, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	var zero T
	return zero, false
}

// SameSet reports whether a and b hold the same values, ignoring order.
// Both slices are expected to be free of duplicates.
func SameSet[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[T]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
