package poquery

const (
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPageSize = 20
)

// IsNormalizedPageSize clamps size to [MinPageSize, maxSize] and reports
// whether the input was already within range (zero and negative sizes take
// the default).
func IsNormalizedPageSize(size int, maxSize int) (int, bool) {
	if size <= 0 {
		return DefaultPageSize, false
	} else if size > maxSize {
		return maxSize, false
	}

	return size, true
}

func NormalizePageSizeMax(size int, maxSize int) int {
	ret, _ := IsNormalizedPageSize(size, maxSize)
	return ret
}

func NormalizePageSize(size int) int {
	return NormalizePageSizeMax(size, MaxPageSize)
}
