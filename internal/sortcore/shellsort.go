package sortcore

// shellsortGaps are applied in this order: gap 4 first, then gap 1. The
// cleanup runs unconditionally after the driver (or in its place entirely,
// for n <= 16), since the driver defers every small sub-range and leaves
// disorder confined to windows no wider than the threshold — a two-pass,
// small-gap shellsort is enough to finish the job. Collapsing this to a
// single gap-1 pass would still leave it correct, but would give up the
// benefit of the gap-4 pass moving far-displaced elements most of the way
// home in fewer comparisons; the two passes are intentional, not redundant.
var shellsortGaps = [2]int{4, 1}

// shellsort runs the two-gap cleanup pass over the full range data[0:n).
func shellsort(data Interface, n int) {
	for _, gap := range shellsortGaps {
		for i := gap; i < n; i++ {
			for k := i; k >= gap && data.Less(k, k-gap); k -= gap {
				data.Swap(k, k-gap)
			}
		}
	}
}
