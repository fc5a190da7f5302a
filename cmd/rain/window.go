package main

import (
	"github.com/spf13/cobra"

	"rainmatrix/internal/app"
)

var windowSeed int64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the simulation in an emulated matrix window",
	Long: `Opens a scaled window that stands in for the physical pixel matrix.
Requires a binary built with -tags ebiten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, err := makeSim()
		if err != nil {
			return err
		}
		sim.Reset(windowSeed)
		return app.Run(sim, cfg.Scale, cfg.FPS, cfg.Brightness, windowSeed)
	},
}

func init() {
	windowCmd.Flags().Int64Var(&windowSeed, "seed", 0, "random seed for the spawn rule")
	rootCmd.AddCommand(windowCmd)
}
