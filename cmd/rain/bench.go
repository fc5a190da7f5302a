package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"rainmatrix/internal/core"
	"rainmatrix/internal/sims/rain"
)

var (
	benchSizes  []int
	benchFrames []int
)

// benchCmd runs the simulation headless, flat out, over a matrix of grid
// sizes and frame counts. The sizes mirror the panels the effect targets.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure headless frame throughput",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("size      frames    elapsed         frames/sec")
		for _, size := range benchSizes {
			for _, frames := range benchFrames {
				elapsed, err := benchRun(size, frames)
				if err != nil {
					return err
				}
				rate := float64(frames) / elapsed.Seconds()
				fmt.Printf("%-9s %-9d %-15s %.0f\n",
					strconv.Itoa(size)+"x"+strconv.Itoa(size), frames, elapsed.Round(time.Microsecond), rate)
			}
		}
		return nil
	},
}

func benchRun(size, frames int) (time.Duration, error) {
	sim, err := rain.New(rain.Config{
		Height:      size,
		Width:       size,
		SpawnChance: cfg.SpawnChance,
		Rand:        core.NewRNG(1337),
	})
	if err != nil {
		return 0, fmt.Errorf("bench %dx%d: %w", size, size, err)
	}

	start := time.Now()
	err = sim.Grid().Run(frames, func([]uint8) bool { return true })
	if err != nil {
		return 0, fmt.Errorf("bench %dx%d: %w", size, size, err)
	}
	return time.Since(start), nil
}

func init() {
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{8, 16, 32, 64}, "square grid sizes to measure")
	benchCmd.Flags().IntSliceVar(&benchFrames, "frames", []int{1, 5, 50, 500}, "frame counts to measure")
	rootCmd.AddCommand(benchCmd)
}
