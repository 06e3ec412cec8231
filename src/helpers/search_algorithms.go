package helpers

import "sort"

// FindFloorIndex returns the index of the greatest value in values that
// does not exceed target. values must be sorted in ascending order. The
// second return is false when target is below the first value.
func FindFloorIndex(values []int64, target int64) (int, bool) {
	idx := sort.Search(len(values), func(i int) bool {
		return values[i] > target
	})
	if idx == 0 {
		return 0, false
	}
	return idx - 1, true
}
