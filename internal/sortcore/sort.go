package sortcore

import "math/bits"

// smallPartitionThreshold is the element count at or below which a
// sub-range is left to the shellsort finisher instead of being recursed (or
// iterated) into by the driver.
const smallPartitionThreshold = 16

// Sort orders data[0:data.Len()) ascending per data.Less, using an iterative
// median-of-three quicksort backed by an explicit bounded stack, falling
// back to a Floyd-optimized heapsort on any partition whose depth exceeds
// 2*floor(log2(n)), and finishing with a two-gap shellsort cleanup pass.
//
// Sort performs no allocation: the partition stack is a fixed-size array
// value and the scratch register lives inside data's own adapter.
func Sort(data Interface) {
	n := data.Len()
	if n > smallPartitionThreshold {
		drive(data, n)
	}
	// Unconditional cleanup: this is the only step for n <= 16, and mops up
	// whatever the driver deferred otherwise.
	shellsort(data, n)
}

// HeapSort fully sorts data[0:data.Len()) with the heapsort fallback alone,
// skipping the quicksort/shellsort stages entirely. It exists so the
// heapsort phase can be exercised and benchmarked independent of the
// introsort driver, not as part of the driver's own contract.
func HeapSort(data Interface) {
	n := data.Len()
	if n <= 1 {
		return
	}
	heapsortRange(data, 0, n-1)
}

func depthLimit(n int) int {
	if n < 2 {
		return 0
	}
	return 2 * (bits.Len(uint(n)) - 1) // 2*floor(log2(n))
}

// drive runs the iterative partition loop described by the introsort driver:
// it repeatedly partitions the current range, decides whether to recurse
// (via the stack), iterate into a sub-range directly, defer both sub-ranges
// to the shellsort finisher, or — once depth exceeds the limit — hand the
// current range to the heapsort fallback. It returns the partition stack's
// high-water mark, which production callers ignore but tests use to assert
// the stack-depth bound.
func drive(data Interface, n int) int {
	var st stack
	limit := depthLimit(n)
	depth := 0
	lo, hi := 0, n-1

	for {
		if depth > limit {
			heapsortRange(data, lo, hi)
			var ok bool
			lo, hi, ok = st.pop()
			if !ok {
				return st.highWater
			}
			depth--
			continue
		}

		right, left := partition(data, lo, hi)

		leftSmall := right-lo+1 <= smallPartitionThreshold
		rightSmall := hi-left+1 <= smallPartitionThreshold

		switch {
		case leftSmall && rightSmall:
			var ok bool
			lo, hi, ok = st.pop()
			if !ok {
				return st.highWater
			}
			depth--
		case leftSmall && !rightSmall:
			lo = left
		case !leftSmall && rightSmall:
			hi = right
		default:
			// Push the larger sub-range, iterate into the smaller one. This
			// bounds stack depth at O(log n).
			if (right - lo) > (hi - left) {
				st.push(lo, right)
				lo = left
			} else {
				st.push(left, hi)
				hi = right
			}
			depth++
		}
	}
}
