package main

import (
	"fmt"
	"strconv"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"rainmatrix/internal/core"
	"rainmatrix/internal/term"
)

var runSeed int64

func makeSim() (core.Sim, error) {
	factory, ok := core.Sims()[simName]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", simName)
	}
	return factory(map[string]string{
		"height": strconv.Itoa(cfg.Height),
		"width":  strconv.Itoa(cfg.Width),
		"chance": strconv.FormatFloat(cfg.SpawnChance, 'f', -1, 64),
	})
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the simulation in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, err := makeSim()
		if err != nil {
			return err
		}
		sim.Reset(runSeed)

		log.Infof("running %s at %dx%d, %d fps", sim.Name(), cfg.Width, cfg.Height, cfg.FPS)
		return term.Run(sim, term.Options{
			FPS:        cfg.FPS,
			Brightness: cfg.Brightness,
			Seed:       runSeed,
		})
	},
}

func init() {
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed for the spawn rule")
	rootCmd.AddCommand(runCmd)
}
