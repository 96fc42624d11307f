package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/viccpp/regrow/array"
	"github.com/viccpp/regrow/telemetry"
)

var (
	demoAllocator string
	demoInitial   int
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().StringVar(&demoAllocator, "allocator", "page", "Allocator to use (heap or page)")
	// Blocks below the allocator's resize granularity rarely move in place,
	// so the demo starts with a few pages worth of elements.
	cmd.Flags().IntVar(&demoInitial, "initial", (16<<10)/8, "Initial element count")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk one array through append, pop and shrink-to-fit",
		Long: `The demo command pre-sizes an array, appends a few elements one by one,
pops one and shrinks to fit, timing every step and reporting whether the
capacity changes happened in place.

Example:
  regrowctl demo
  regrowctl demo --allocator heap
  regrowctl demo --initial 4096 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

// DemoStep is one timed operation of the demo walk.
type DemoStep struct {
	Op       string        `json:"op"`
	Capacity int           `json:"capacity"`
	Length   int           `json:"length"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// DemoReport is the full demo outcome including the telemetry counters.
type DemoReport struct {
	Allocator        string     `json:"allocator"`
	Steps            []DemoStep `json:"steps"`
	ResizeAttempts   uint64     `json:"resize_attempts"`
	InPlaceResizes   uint64     `json:"in_place_resizes"`
	RelocationEvents uint64     `json:"relocation_events"`
}

func runDemo() error {
	al, err := newAllocator(demoAllocator)
	if err != nil {
		return err
	}
	counters := telemetry.NewCounters()

	arr, err := array.NewWithLen[int64](al, counters, demoInitial)
	if err != nil {
		return err
	}
	defer arr.Release()
	slog.Debug("array created", "allocator", demoAllocator, "capacity", arr.Cap(), "length", arr.Len())

	report := DemoReport{Allocator: demoAllocator}
	step := func(op string, f func() error) error {
		start := time.Now()
		if err := f(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		report.Steps = append(report.Steps, DemoStep{
			Op:       op,
			Capacity: arr.Cap(),
			Length:   arr.Len(),
			Elapsed:  time.Since(start),
		})
		return nil
	}

	if err := step("create", func() error { return nil }); err != nil {
		return err
	}
	for i := int64(1); i <= 4; i++ {
		if err := step("append", func() error { return arr.Append(i) }); err != nil {
			return err
		}
	}
	if err := step("pop", arr.PopBack); err != nil {
		return err
	}
	if err := step("shrink-to-fit", arr.ShrinkToFit); err != nil {
		return err
	}

	report.ResizeAttempts, report.InPlaceResizes = counters.Snapshot()
	report.RelocationEvents = report.ResizeAttempts - report.InPlaceResizes

	if jsonOut {
		return printJSON(report)
	}
	printDemoReport(report)
	return nil
}

func printDemoReport(r DemoReport) {
	if quiet {
		return
	}
	p := message.NewPrinter(language.English)
	for _, s := range r.Steps {
		p.Printf("%-14s capacity = %d, length = %d, time: %v\n",
			s.Op, s.Capacity, s.Length, s.Elapsed)
	}
	p.Printf("%d of %d resize attempts satisfied in place (%d relocations)\n",
		r.InPlaceResizes, r.ResizeAttempts, r.RelocationEvents)
}
