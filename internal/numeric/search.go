package numeric

import "golang.org/x/exp/constraints"

// Bracket locates the bracketing indices for value within a strictly
// monotone array (ascending or descending, detected from the
// endpoints). The returned (lower, upper) always satisfy
// upper == lower+1, and array[lower]/array[upper] straddle value
// respecting the array's direction. Values outside the array's range
// clamp to the nearest edge interval.
//
// array must have at least two elements and be strictly monotone;
// behaviour on a shorter or non-monotone array is undefined.
func Bracket[T constraints.Ordered](array []T, value T) (lower, upper int) {
	ascending := array[len(array)-1] > array[0]

	lo, hi := 0, len(array)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if ascending {
			if array[mid] <= value {
				lo = mid
			} else {
				hi = mid
			}
		} else {
			if array[mid] >= value {
				lo = mid
			} else {
				hi = mid
			}
		}
	}

	return lo, hi
}
