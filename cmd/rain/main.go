package main

import (
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"rainmatrix/internal/config"
	_ "rainmatrix/internal/sims/rain"
)

var (
	cfg     config.Config
	simName string
)

var rootCmd = &cobra.Command{
	Use:   "rain",
	Short: "Rule-based rain automaton for pixel matrices",
	Long: `rain drives a cellular-automaton rain effect and renders it either
directly in the terminal or in an emulated matrix window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		// Environment (and .env) override defaults; explicit flags override
		// the environment.
		flags := cmd.Flags()
		if !flags.Changed("height") {
			cfg.Height = loaded.Height
		}
		if !flags.Changed("width") {
			cfg.Width = loaded.Width
		}
		if !flags.Changed("chance") {
			cfg.SpawnChance = loaded.SpawnChance
		}
		if !flags.Changed("fps") {
			cfg.FPS = loaded.FPS
		}
		if !flags.Changed("brightness") {
			cfg.Brightness = loaded.Brightness
		}
		if !flags.Changed("scale") {
			cfg.Scale = loaded.Scale
		}
		return nil
	},
}

func init() {
	defaults := config.Defaults()
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&cfg.Height, "height", defaults.Height, "grid height in cells")
	pf.IntVar(&cfg.Width, "width", defaults.Width, "grid width in cells")
	pf.Float64Var(&cfg.SpawnChance, "chance", defaults.SpawnChance, "per-cell raindrop spawn probability")
	pf.IntVar(&cfg.FPS, "fps", defaults.FPS, "simulation frames per second")
	pf.Float64Var(&cfg.Brightness, "brightness", defaults.Brightness, "display brightness in [0,1]")
	pf.IntVar(&cfg.Scale, "scale", defaults.Scale, "window pixels per cell (window mode)")
	pf.StringVar(&simName, "sim", "rain", "registered simulation to run")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
