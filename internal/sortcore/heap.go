package sortcore

// heapsortRange sorts the inclusive index range [lo, hi] in place using a
// bottom-up binary heap with Floyd's optimization. It is used both as the
// introsort driver's depth-exceeded fallback (on whatever partition the
// driver is currently holding) and as a standalone full-range sort exposed
// to callers that want a guaranteed-O(n log n) baseline to benchmark against.
//
// The heap uses the same child layout as the reference this package is
// modeled on: children of index i sit at 2i+2 and 2i+3 rather than the more
// common 2i+1/2i+2. This is preserved verbatim rather than "corrected" to the
// conventional layout, since substituting it is reference behavior that
// would need exhaustive small-input testing before any substitution —
// testing this implementation cannot perform.
func heapsortRange(data Interface, lo, hi int) {
	length := hi - lo // highest valid 0-based index within [lo, hi]
	if length <= 0 {
		return
	}

	heapify(data, lo, length)
	extract(data, lo, length)
}

// heapify builds a max-heap over data[lo : lo+length] via repeated sift-down,
// comparing each sifted value against the scratch register to find its
// resting place (no Floyd shortcut here — that only applies during
// extraction).
func heapify(data Interface, lo, length int) {
	for k := length / 2; ; k-- {
		i := k
		j := i*2 + 2
		data.Save(lo + i)
		for j <= length {
			if j < length && data.Less(lo+j, lo+j+1) {
				j++
			}
			if !data.ScratchLess(lo + j) {
				break
			}
			data.Move(lo+i, lo+j)
			i = j
			j = i*2 + 2
		}
		data.Restore(lo + i)
		if k == 0 {
			break
		}
	}
}

// extract repeatedly removes the max element and restores heap order using
// Floyd's optimization: the sift-down phase moves the larger child into the
// hole without ever comparing against the value being sifted, then a
// compensating sift-up walks that value back up to its true resting place.
// This trades O(log n) extra moves for roughly n*log2(n) fewer comparisons
// than a heapify-style sift-down would need.
func extract(data Interface, lo, length int) {
	for partLength := length; ; partLength-- {
		if partLength == 1 {
			// Under this heap's 2i+2/2i+3 layout indices 0 and 1 are
			// both roots, and the descent below compares them as
			// siblings at j == 0 only while j < partLength-1 holds.
			// With partLength == 1 that bound skips the comparison, so
			// the descent would move lo into lo+1 unconditionally. With
			// only these two elements left, resolve them with a direct
			// comparison instead.
			if data.Less(lo+1, lo) {
				data.Swap(lo, lo+1)
			}
			break
		}

		i := partLength
		j := 0
		data.Save(lo + partLength)

		for j < partLength {
			if j < partLength-1 && data.Less(lo+j, lo+j+1) {
				j++
			}
			data.Move(lo+i, lo+j)
			i = j
			j = i*2 + 2
		}

		for i > 1 {
			j = (i - 2) >> 1
			if !data.LessScratch(lo + j) {
				break
			}
			data.Move(lo+i, lo+j)
			i = j
		}

		data.Restore(lo + i)
	}
}
