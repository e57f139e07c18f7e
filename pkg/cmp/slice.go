package cmp

func SliceEq[T comparable](a []T, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for nth, va := range a {
		if va != b[nth] {
			return false
		}
	}
	return true
}

func SliceEqWith[T any, U any](a []T, b []U, pred func(a T, b U) bool) bool {
	if len(a) != len(b) {
		return false
	}

	for nth := range a {
		if !pred(a[nth], b[nth]) {
			return false
		}
	}

	return true
}

// SliceContentEq checks a and b hold the same elements, ignoring ordering.
//
// Multiplicity matters: {x, x, y} and {x, y, y} are not equal.
func SliceContentEq[T comparable](a []T, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	counts := map[T]int{}
	for _, va := range a {
		counts[va] += 1
	}
	for _, vb := range b {
		counts[vb] -= 1
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
