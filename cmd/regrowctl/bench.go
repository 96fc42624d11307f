package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/viccpp/regrow/array"
	"github.com/viccpp/regrow/telemetry"
)

var benchCount int

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchCount, "count", 1_000_000, "Number of elements to append")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Compare append throughput across allocators",
		Long: `The bench command appends the same element count through every
allocator and reports elapsed time, final capacity and how often growth
was satisfied in place.

Example:
  regrowctl bench
  regrowctl bench --count 10000000 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

// BenchResult is the outcome of one allocator's run.
type BenchResult struct {
	Allocator        string        `json:"allocator"`
	Count            int           `json:"count"`
	Elapsed          time.Duration `json:"elapsed_ns"`
	FinalCapacity    int           `json:"final_capacity"`
	ResizeAttempts   uint64        `json:"resize_attempts"`
	InPlaceResizes   uint64        `json:"in_place_resizes"`
	RelocationEvents uint64        `json:"relocation_events"`
}

func runBench() error {
	var results []BenchResult
	for _, name := range []string{"heap", "page"} {
		res, err := benchAllocator(name, benchCount)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	if jsonOut {
		return printJSON(results)
	}
	printBenchResults(results)
	return nil
}

func benchAllocator(name string, count int) (BenchResult, error) {
	al, err := newAllocator(name)
	if err != nil {
		return BenchResult{}, err
	}
	counters := telemetry.NewCounters()
	arr := array.NewRecorded[int64](al, counters)
	defer arr.Release()

	slog.Debug("bench run starting", "allocator", name, "count", count)
	start := time.Now()
	for i := 0; i < count; i++ {
		if err := arr.Append(int64(i)); err != nil {
			return BenchResult{}, err
		}
	}
	elapsed := time.Since(start)

	res := BenchResult{
		Allocator:     name,
		Count:         count,
		Elapsed:       elapsed,
		FinalCapacity: arr.Cap(),
	}
	res.ResizeAttempts, res.InPlaceResizes = counters.Snapshot()
	res.RelocationEvents = res.ResizeAttempts - res.InPlaceResizes
	return res, nil
}

func printBenchResults(results []BenchResult) {
	if quiet {
		return
	}
	p := message.NewPrinter(language.English)
	for _, r := range results {
		p.Printf("%-5s appended %d elements in %v (capacity %d, %d of %d resizes in place, %d relocations)\n",
			r.Allocator, r.Count, r.Elapsed, r.FinalCapacity,
			r.InPlaceResizes, r.ResizeAttempts, r.RelocationEvents)
	}
}
