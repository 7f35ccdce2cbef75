// Command sortbench drives internal/benchdevice over a list of array sizes
// and prints a heapsort-vs-introsort timing table, the userspace client side
// of the benchmark scaffolding described alongside the core algorithm.
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kart81604/gosort/internal/benchdevice"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Fatal("sortbench failed")
	}
}

func newRootCmd() *cobra.Command {
	var sizes []int
	var seed uint64
	var csv bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark introsort against its heapsort fallback across array sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if len(sizes) == 0 {
				return fmt.Errorf("sortbench: no --sizes given")
			}
			for _, n := range sizes {
				if n < 0 {
					logrus.WithField("size", n).Warn("ignoring negative size")
				}
			}

			reports := benchdevice.Run(positiveOnly(sizes), seed)
			if csv {
				writeCSV(cmd.OutOrStdout(), reports)
				return nil
			}
			benchdevice.WriteTable(cmd.OutOrStdout(), reports)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntSliceVar(&sizes, "sizes", []int{20, 200, 2000, 20000}, "array sizes to benchmark")
	flags.Uint64Var(&seed, "seed", 1, "PRNG seed for reproducible permutations")
	flags.BoolVar(&csv, "csv", false, "emit comma-separated output instead of a table")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func positiveOnly(sizes []int) []int {
	out := make([]int, 0, len(sizes))
	for _, n := range sizes {
		if n >= 0 {
			out = append(out, n)
		}
	}
	return out
}

func writeCSV(w interface{ Write([]byte) (int, error) }, reports []benchdevice.Report) {
	fmt.Fprintln(w, "length,heapsort_us,introsort_us")
	for _, r := range reports {
		fmt.Fprintf(w, "%d,%d,%d\n", r.Length, r.HeapsortMicros, r.IntrosortMicros)
	}
}
