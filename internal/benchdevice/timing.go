package benchdevice

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	introsort "github.com/kart81604/gosort"
)

// Report is one row of a timing table: how long the heapsort-only path and
// the full introsort path each took to sort an equivalent random
// permutation of the same length.
type Report struct {
	Length          int
	HeapsortMicros  int64
	IntrosortMicros int64
}

// Run benchmarks both introsort.HeapSort and introsort.Sort against fresh,
// equal-length random permutations for each entry in lengths, seeded from
// seed so results are reproducible across invocations.
func Run(lengths []int, seed uint64) []Report {
	reports := make([]Report, 0, len(lengths))
	less := func(a, b uint64) bool { return a < b }

	for _, n := range lengths {
		prng := NewPRNG(seed + uint64(n) + 1)
		base := prng.Fill(n)

		heapData := append([]uint64(nil), base...)
		introData := append([]uint64(nil), base...)

		start := time.Now()
		introsort.HeapSort(heapData, less)
		heapDur := time.Since(start)

		start = time.Now()
		introsort.Sort(introData, less)
		introDur := time.Since(start)

		reports = append(reports, Report{
			Length:          n,
			HeapsortMicros:  heapDur.Microseconds(),
			IntrosortMicros: introDur.Microseconds(),
		})
	}
	return reports
}

// WriteTable prints reports as a tab-aligned (length, heapsort_us,
// introsort_us) table.
func WriteTable(w io.Writer, reports []Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "length\theapsort_us\tintrosort_us")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%d\t%d\n", r.Length, r.HeapsortMicros, r.IntrosortMicros)
	}
	tw.Flush()
}
