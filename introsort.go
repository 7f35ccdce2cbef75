// Package introsort sorts slices in place with an introspective sort:
// iterative median-of-three quicksort, a depth-triggered bottom-up heapsort
// fallback (with Floyd's optimization) for pathological inputs, and a
// terminal two-gap shellsort cleanup. It guarantees O(n log n) worst-case
// time while keeping quicksort's typical-case constant factor.
//
// Sort and SortFunc are the ordinary entry points for Go code. SortRaw,
// backed by the internal rawsort package, exposes the same algorithm over an opaque
// unsafe.Pointer buffer for use at an FFI boundary; most callers want Sort
// or SortFunc instead.
package introsort

import "github.com/kart81604/gosort/internal/sortcore"

// Sort orders data in place ascending according to less, which must impose a
// strict weak ordering consistent with a total order; behavior with an
// inconsistent less is undefined beyond not corrupting memory. Sort is not
// stable: equal elements may be reordered relative to each other.
func Sort[T any](data []T, less func(a, b T) bool) {
	sortcore.Sort(&sliceAdapter[T]{data: data, less: less})
}

// SortFunc orders data in place ascending according to cmp, which must
// return a negative number when a precedes b, zero when they are equivalent,
// and a positive number when a follows b.
func SortFunc[T any](data []T, cmp func(a, b T) int) {
	Sort(data, func(a, b T) bool { return cmp(a, b) < 0 })
}

// HeapSort orders data in place ascending according to less using only the
// heapsort phase of the algorithm, skipping quicksort partitioning and the
// shellsort cleanup entirely. It is slower than Sort on typical inputs but
// has no partition-depth-dependent behavior, which makes it a useful
// benchmark baseline for Sort's worst-case guarantee.
func HeapSort[T any](data []T, less func(a, b T) bool) {
	sortcore.HeapSort(&sliceAdapter[T]{data: data, less: less})
}

// sliceAdapter implements sortcore.Interface over a Go slice, using a single
// field as the scratch register the heapsort phase needs for Floyd's
// optimization.
type sliceAdapter[T any] struct {
	data    []T
	less    func(a, b T) bool
	scratch T
}

func (s *sliceAdapter[T]) Len() int           { return len(s.data) }
func (s *sliceAdapter[T]) Less(i, j int) bool { return s.less(s.data[i], s.data[j]) }
func (s *sliceAdapter[T]) Swap(i, j int)      { s.data[i], s.data[j] = s.data[j], s.data[i] }
func (s *sliceAdapter[T]) Move(dst, src int)  { s.data[dst] = s.data[src] }
func (s *sliceAdapter[T]) Save(i int)         { s.scratch = s.data[i] }
func (s *sliceAdapter[T]) Restore(i int)      { s.data[i] = s.scratch }
func (s *sliceAdapter[T]) LessScratch(i int) bool { return s.less(s.data[i], s.scratch) }
func (s *sliceAdapter[T]) ScratchLess(i int) bool { return s.less(s.scratch, s.data[i]) }
