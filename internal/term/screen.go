// Package term runs a simulation interactively in the terminal, one glyph
// per cell, using the state registry's palette for foreground colors.
package term

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"rainmatrix/internal/ca"
	"rainmatrix/internal/core"
	"rainmatrix/internal/render"
)

// Options configures an interactive terminal run.
type Options struct {
	FPS        int
	Brightness float64
	Seed       int64
}

// Run displays sim until the user quits (q, Esc or Ctrl-C). Space pauses,
// n steps a single frame while paused, r replays the current seed and s
// reseeds from the clock. The frame loop and the input loop run as a pair
// under one errgroup; whichever stops first cancels the other.
func Run(sim core.Sim, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	styles := cellStyles(sim, opts.Brightness)
	seed := opts.Seed

	var paused, stepOnce atomic.Bool

	eg, ctx := errgroup.WithContext(context.Background())
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
					cancel()
					return nil
				case ev.Rune() == ' ':
					paused.Store(!paused.Load())
				case ev.Rune() == 'n':
					stepOnce.Store(true)
				case ev.Rune() == 'r':
					sim.Reset(seed)
				case ev.Rune() == 's':
					seed = time.Now().UnixNano()
					sim.Reset(seed)
				}
			}
		}
	})

	eg.Go(func() error {
		pace := core.NewFixedStep(opts.FPS)
		poll := time.NewTicker(2 * time.Millisecond)
		defer poll.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-poll.C:
				if !pace.ShouldStep() {
					continue
				}
				if !paused.Load() || stepOnce.Swap(false) {
					sim.Step()
				}
				draw(screen, sim, styles, paused.Load())
			}
		}
	})

	return eg.Wait()
}

func cellStyles(sim core.Sim, brightness float64) []tcell.Style {
	palette := render.Dim(sim.Registry().Palette(), brightness)
	styles := make([]tcell.Style, len(palette))
	for i, col := range palette {
		styles[i] = tcell.StyleDefault.
			Background(tcell.ColorBlack).
			Foreground(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
	}
	return styles
}

func draw(screen tcell.Screen, sim core.Sim, styles []tcell.Style, paused bool) {
	size := sim.Size()
	cells := sim.Cells()
	reg := sim.Registry()
	for i, c := range cells {
		screen.SetContent(i%size.W, i/size.W, reg.GlyphOf(ca.State(c)), nil, styles[c])
	}
	status := "frame " + strconv.Itoa(sim.Frame())
	if paused {
		status += "  [paused]"
	}
	drawText(screen, 0, size.H, status)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, style)
	}
	// Pad over leftovers from a longer previous status.
	for i := len(s); i < len(s)+12; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}
