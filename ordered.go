package introsort

import "cmp"

// SortOrdered orders data in place ascending using the natural order of T.
// It is a convenience over Sort for any type supporting the built-in
// comparison operators.
func SortOrdered[T cmp.Ordered](data []T) {
	Sort(data, func(a, b T) bool { return a < b })
}
