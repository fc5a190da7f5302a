// Package rain implements the rain automaton shown on the pixel matrix:
// drops spawn at the top row, fall, and splash outward when they hit the
// floor. The whole effect is expressed as an ordered table of region rules
// evaluated by the ca engine; registration order is semantic, since later
// rules win on overlapping writes.
package rain

import (
	"image/color"
	"strconv"

	"rainmatrix/internal/ca"
	"rainmatrix/internal/core"
)

// Cell states, dense from zero so they index the palette directly.
const (
	Empty ca.State = iota
	Raindrop
	Splashdrop
	SplashLeft
	SplashRight
)

// DefaultSpawnChance is the per-cell probability of a new raindrop
// appearing in the top row each frame.
const DefaultSpawnChance = 0.025

var registry = mustRegistry()

func mustRegistry() *ca.Registry {
	r, err := ca.NewRegistry([]ca.StateSpec{
		{State: Empty, Glyph: ' ', Color: color.RGBA{A: 0xff}},
		{State: Raindrop, Glyph: 'O', Color: color.RGBA{R: 13, G: 94, B: 255, A: 0xff}},
		{State: Splashdrop, Glyph: 'o', Color: color.RGBA{R: 107, G: 155, B: 250, A: 0xff}},
		{State: SplashLeft, Glyph: '*', Color: color.RGBA{R: 170, G: 197, B: 250, A: 0xff}},
		{State: SplashRight, Glyph: '*', Color: color.RGBA{R: 170, G: 197, B: 250, A: 0xff}},
	})
	if err != nil {
		panic(err)
	}
	return r
}

// Registry returns the rain state table.
func Registry() *ca.Registry { return registry }

// Config holds the tunables of a rain simulation.
type Config struct {
	Height int
	Width  int
	// SpawnChance is the top-row raindrop probability. Zero means
	// DefaultSpawnChance; use a negative value to disable spawning.
	SpawnChance float64
	// Rand overrides the random source. When nil, Reset seeds a fresh
	// deterministic generator; when set, Reset leaves it untouched.
	Rand core.Source
}

// FromMap parses a string configuration map, falling back to defaults for
// missing or malformed entries.
func FromMap(cfg map[string]string) Config {
	c := Config{Height: 64, Width: 64}
	if v, err := strconv.Atoi(cfg["height"]); err == nil {
		c.Height = v
	}
	if v, err := strconv.Atoi(cfg["width"]); err == nil {
		c.Width = v
	}
	if v, err := strconv.ParseFloat(cfg["chance"], 64); err == nil {
		c.SpawnChance = v
	}
	return c
}

// Sim drives a rain automaton and adapts it to the core.Sim contract.
type Sim struct {
	grid   *ca.Grid
	cfg    Config
	chance float64
	rng    core.Source
}

// New builds a rain simulation. The rule table is validated against the
// grid dimensions, so an impossible configuration fails here rather than
// mid-frame.
func New(cfg Config) (*Sim, error) {
	s := &Sim{cfg: cfg, chance: cfg.SpawnChance}
	if s.chance == 0 {
		s.chance = DefaultSpawnChance
	}
	s.rng = cfg.Rand
	if s.rng == nil {
		s.rng = core.NewRNG(0)
	}

	grid, err := ca.New(cfg.Height, cfg.Width, s.rules())
	if err != nil {
		return nil, err
	}
	s.grid = grid
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "rain" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{H: s.grid.H(), W: s.grid.W()} }

// Frame returns the number of completed steps.
func (s *Sim) Frame() int { return s.grid.Frame() }

// Cells exposes the current state codes. The slice aliases the grid's
// backing buffer and is only valid until the next Step.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Registry returns the state table used to decode Cells.
func (s *Sim) Registry() *ca.Registry { return registry }

// Grid exposes the underlying automaton, mainly for tests and harnesses.
func (s *Sim) Grid() *ca.Grid { return s.grid }

// Reset clears the grid. When no random source was injected, the spawn rule
// is reseeded from seed so identically-seeded sims replay identical frames.
func (s *Sim) Reset(seed int64) {
	cells := s.grid.Cells()
	for i := range cells {
		cells[i] = uint8(Empty)
	}
	if s.cfg.Rand == nil {
		s.rng = core.NewRNG(seed)
	}
}

// Step advances the simulation one frame. The rule table is validated at
// construction and the rain masks are total functions of grid state, so a
// step error here is a programmer bug and panics.
func (s *Sim) Step() {
	if err := s.grid.Step(); err != nil {
		panic(err)
	}
}

// Text renders the current frame as glyph rows for terminal/debug output.
func (s *Sim) Text() string {
	return registry.Text(s.grid.Cells(), s.grid.W())
}

// rules builds the rain rule table. Order is load-bearing: splash removal
// is registered before splashdrop creation so a one-frame-old splash is
// erased and its drop spawned from the same pre-frame snapshot, and the
// later write wins where the two overlap.
func (s *Sim) rules() []ca.Rule {
	up := ca.Delta{Vrt: -1}
	down := ca.Delta{Vrt: 1}
	downLeft := ca.Delta{Vrt: 1, Hrz: -1}
	downRight := ca.Delta{Vrt: 1, Hrz: 1}

	return []ca.Rule{
		{
			Name:   "spawn-raindrops",
			Target: ca.Row(0),
			To:     Raindrop,
			Mask: func(g *ca.Grid, win ca.Window, mask []bool) error {
				for i := range mask {
					mask[i] = s.rng.Float64() < s.chance
				}
				return nil
			},
		},
		{
			Name:   "rain-falls",
			Target: ca.Region{Rows: ca.From(1)},
			To:     Raindrop,
			Reads:  []ca.Delta{up},
			Mask: cellMask(func(g *ca.Grid, r, c int) bool {
				return g.At(r, c) == Empty && g.At(r-1, c) == Raindrop
			}),
		},
		{
			Name:   "rain-trail-clears",
			Target: ca.Everywhere(),
			To:     Empty,
			Reads:  []ca.Delta{up, down},
			Mask: cellMask(func(g *ca.Grid, r, c int) bool {
				if g.At(r, c) != Raindrop || g.StateAt(r-1, c) == Raindrop {
					return false
				}
				below := g.StateAt(r+1, c)
				return below == Raindrop || below == ca.OffGrid
			}),
		},
		{
			Name:   "splash-left",
			Target: ca.Region{Rows: ca.At(-2), Cols: ca.To(-1)},
			To:     SplashLeft,
			Reads:  []ca.Delta{down, downRight},
			Mask: cellMask(func(g *ca.Grid, r, c int) bool {
				return g.At(r+1, c+1) == Raindrop &&
					g.At(r, c+1) != Raindrop &&
					g.At(r, c) == Empty &&
					g.At(r+1, c) == Empty
			}),
		},
		{
			Name:   "splash-right",
			Target: ca.Region{Rows: ca.At(-2), Cols: ca.From(1)},
			To:     SplashRight,
			Reads:  []ca.Delta{down, downLeft},
			Mask: cellMask(func(g *ca.Grid, r, c int) bool {
				return g.At(r+1, c-1) == Raindrop &&
					g.At(r, c-1) != Raindrop &&
					g.At(r, c) == Empty &&
					g.At(r+1, c) == Empty
			}),
		},
		{
			Name:   "splash-left-rises",
			Target: ca.Region{Rows: ca.At(-3), Cols: ca.To(-1)},
			To:     SplashLeft,
			Reads:  []ca.Delta{downRight},
			Mask: cellMask(func(g *ca.Grid, r, c int) bool {
				return g.At(r+1, c+1) == SplashLeft
			}),
		},
		{
			Name:   "splash-right-rises",
			Target: ca.Region{Rows: ca.At(-3), Cols: ca.From(1)},
			To:     SplashRight,
			Reads:  []ca.Delta{downLeft},
			Mask: cellMask(func(g *ca.Grid, r, c int) bool {
				return g.At(r+1, c-1) == SplashRight
			}),
		},
		{
			Name:   "splashes-fade",
			Target: ca.Region{Rows: ca.From(-3)},
			To:     Empty,
			Mask: cellMask(func(g *ca.Grid, r, c int) bool {
				switch g.At(r, c) {
				case SplashLeft, SplashRight, Splashdrop:
					return true
				}
				return false
			}),
		},
		{
			Name:   "splash-becomes-splashdrop",
			Target: ca.Region{Rows: ca.At(-3)},
			To:     Splashdrop,
			Mask: cellMask(func(g *ca.Grid, r, c int) bool {
				st := g.At(r, c)
				return st == SplashLeft || st == SplashRight
			}),
		},
		{
			Name:   "splashdrop-falls",
			Target: ca.Region{Rows: ca.From(1)},
			To:     Splashdrop,
			Reads:  []ca.Delta{up},
			Mask: cellMask(func(g *ca.Grid, r, c int) bool {
				return g.At(r, c) == Empty && g.At(r-1, c) == Splashdrop
			}),
		},
	}
}

// cellMask lifts a per-cell predicate over the target window.
func cellMask(pred func(g *ca.Grid, r, c int) bool) ca.MaskFn {
	return func(g *ca.Grid, win ca.Window, mask []bool) error {
		for i := range mask {
			r, c := win.Cell(i)
			mask[i] = pred(g, r, c)
		}
		return nil
	}
}

func init() {
	core.Register("rain", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
