package rain

import (
	"bytes"
	"fmt"
	"testing"

	"rainmatrix/internal/ca"
)

// fixedSource replays a fixed sequence of draws, cycling when exhausted.
type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

// still disables spawning so scenarios can seed their own drops.
const still = -1

func newSim(t *testing.T, cfg Config) *Sim {
	t.Helper()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestSpawnFillsTopRowWhenDrawsAlwaysHit(t *testing.T) {
	// Every draw is 0.0, below any non-zero probability, so one step fills
	// the whole (single) row with raindrops.
	s := newSim(t, Config{
		Height:      1,
		Width:       4,
		SpawnChance: 0.001,
		Rand:        &fixedSource{vals: []float64{0}},
	})
	s.Step()
	for c := 0; c < 4; c++ {
		if got := s.Grid().At(0, c); got != Raindrop {
			t.Fatalf("cell %d = %d, expected Raindrop", c, got)
		}
	}
}

func TestSpawnRespectsThreshold(t *testing.T) {
	s := newSim(t, Config{
		Height:      1,
		Width:       4,
		SpawnChance: 0.5,
		Rand:        &fixedSource{vals: []float64{0.1, 0.9, 0.49999, 0.5}},
	})
	s.Step()
	expected := []ca.State{Raindrop, Empty, Raindrop, Empty}
	for c, want := range expected {
		if got := s.Grid().At(0, c); got != want {
			t.Fatalf("cell %d = %d, expected %d", c, got, want)
		}
	}
}

func TestDeterminismForIdenticalSeeds(t *testing.T) {
	run := func() [][]uint8 {
		s := newSim(t, Config{Height: 16, Width: 16})
		s.Reset(42)
		var frames [][]uint8
		err := s.Grid().Run(64, func(cells []uint8) bool {
			frames = append(frames, append([]uint8(nil), cells...))
			return true
		})
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return frames
	}

	a, b := run(), run()
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			t.Fatalf("frame %d differs between identically seeded runs", i)
		}
	}
}

func TestAllCellsStayDeclared(t *testing.T) {
	s := newSim(t, Config{Height: 12, Width: 12, SpawnChance: 0.3})
	s.Reset(7)
	limit := uint8(registry.States())
	for i := 0; i < 200; i++ {
		s.Step()
		for j, c := range s.Cells() {
			if c >= limit {
				t.Fatalf("frame %d cell %d holds undeclared code %d", i+1, j, c)
			}
		}
	}
	if size := s.Size(); size.H != 12 || size.W != 12 {
		t.Fatalf("grid resized to %dx%d", size.H, size.W)
	}
}

func TestRaindropFallsAsTwoCellStreak(t *testing.T) {
	// A fresh drop stretches into a two-cell streak on its first fall; the
	// trail cell clears one frame later, once the head has rain below it.
	s := newSim(t, Config{Height: 6, Width: 3, SpawnChance: still})
	g := s.Grid()
	g.Set(0, 1, Raindrop)

	s.Step()
	for r := 0; r < 6; r++ {
		want := Empty
		if r <= 1 {
			want = Raindrop
		}
		if got := g.At(r, 1); got != want {
			t.Fatalf("after step 1, (%d,1) = %d, expected %d\n%s", r, got, want, s.Text())
		}
	}

	s.Step()
	for r := 0; r < 6; r++ {
		want := Empty
		if r == 1 || r == 2 {
			want = Raindrop
		}
		if got := g.At(r, 1); got != want {
			t.Fatalf("after step 2, (%d,1) = %d, expected %d\n%s", r, got, want, s.Text())
		}
	}
}

func TestSplashLifecycle(t *testing.T) {
	// A drop on the floor splashes up and outward, the splash decays into a
	// splashdrop, and the splashdrop falls off the grid.
	s := newSim(t, Config{Height: 4, Width: 4, SpawnChance: still})
	g := s.Grid()
	g.Set(3, 1, Raindrop)

	steps := []struct {
		name  string
		cells map[[2]int]ca.State
	}{
		{
			name: "impact splashes both ways",
			cells: map[[2]int]ca.State{
				{3, 1}: Empty,
				{2, 0}: SplashLeft,
				{2, 2}: SplashRight,
			},
		},
		{
			// The left splash sits in column 0 and has no cell to rise
			// into; it just fades. The right one climbs a row outward.
			name: "splash rises",
			cells: map[[2]int]ca.State{
				{2, 0}: Empty,
				{2, 2}: Empty,
				{1, 3}: SplashRight,
			},
		},
		{
			name: "high splash becomes a splashdrop",
			cells: map[[2]int]ca.State{
				{1, 3}: Splashdrop,
			},
		},
		{
			name: "splashdrop falls",
			cells: map[[2]int]ca.State{
				{1, 3}: Empty,
				{2, 3}: Splashdrop,
			},
		},
		{
			name: "splashdrop keeps falling",
			cells: map[[2]int]ca.State{
				{2, 3}: Empty,
				{3, 3}: Splashdrop,
			},
		},
		{
			name: "splashdrop leaves the grid",
			cells: map[[2]int]ca.State{
				{3, 3}: Empty,
			},
		},
	}

	for _, step := range steps {
		s.Step()
		for rc, want := range step.cells {
			if got := g.At(rc[0], rc[1]); got != want {
				t.Fatalf("%s: (%d,%d) = %d, expected %d\n%s",
					step.name, rc[0], rc[1], got, want, s.Text())
			}
		}
	}

	for _, c := range g.Cells() {
		if ca.State(c) != Empty {
			t.Fatalf("grid not empty after splash lifecycle\n%s", s.Text())
		}
	}
}

func TestSplashSkipsOccupiedSpots(t *testing.T) {
	s := newSim(t, Config{Height: 4, Width: 4, SpawnChance: still})
	g := s.Grid()
	g.Set(3, 1, Raindrop)
	// A second drop already occupies the floor cell left of the impact, so
	// only the right splash forms.
	g.Set(3, 0, Raindrop)
	// Its own impact cannot splash left (no column -1) nor right (the
	// neighbor floor cell is wet).

	s.Step()
	if got := g.At(2, 0); got != Empty {
		t.Fatalf("left splash formed over an occupied floor: %d\n%s", got, s.Text())
	}
	if got := g.At(2, 2); got != SplashRight {
		t.Fatalf("right splash missing: %d\n%s", got, s.Text())
	}
}

func TestTextRendering(t *testing.T) {
	s := newSim(t, Config{Height: 2, Width: 3, SpawnChance: still})
	s.Grid().Set(0, 0, Raindrop)
	s.Grid().Set(1, 2, Splashdrop)
	if got, want := s.Text(), "O  \n  o"; got != want {
		t.Fatalf("Text() = %q, expected %q", got, want)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"height": "32", "width": "48", "chance": "0.1"})
	if cfg.Height != 32 || cfg.Width != 48 || cfg.SpawnChance != 0.1 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	cfg = FromMap(map[string]string{"height": "not-a-number"})
	if cfg.Height != 64 || cfg.Width != 64 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestResetReplaysSeed(t *testing.T) {
	s := newSim(t, Config{Height: 8, Width: 8})
	s.Reset(99)
	for i := 0; i < 20; i++ {
		s.Step()
	}
	first := append([]uint8(nil), s.Cells()...)

	s.Reset(99)
	for i := 0; i < 20; i++ {
		s.Step()
	}
	if !bytes.Equal(first, s.Cells()) {
		t.Fatal("Reset with the same seed did not replay the same frames")
	}
}

func BenchmarkRainingGrid(b *testing.B) {
	for _, size := range []int{8, 16, 32, 64} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s, err := New(Config{Height: size, Width: size})
			if err != nil {
				b.Fatalf("New failed: %v", err)
			}
			s.Reset(1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Step()
			}
		})
	}
}
