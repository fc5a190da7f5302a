//go:build ebiten

// Package app adapts a simulation to an ebiten window, emulating the pixel
// matrix on a desktop display.
package app

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"rainmatrix/internal/core"
	"rainmatrix/internal/render"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	palette []color.RGBA

	img *ebiten.Image
	buf []byte

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. Brightness scales the
// registry palette the way a matrix panel's brightness setting would.
func New(sim core.Sim, scale int, brightness float64, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		palette: render.Dim(sim.Registry().Palette(), brightness),
		img:     ebiten.NewImage(size.W, size.H),
		buf:     make([]byte, 4*size.W*size.H),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	render.FillRGBA(g.buf, g.sim.Cells(), g.palette)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens the window and drives the game loop until the user quits.
func Run(sim core.Sim, scale, tps int, brightness float64, seed int64) error {
	game := New(sim, scale, brightness, seed)
	size := sim.Size()

	ebiten.SetWindowTitle("rainmatrix — " + sim.Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size.W*scale, size.H*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
