// Package ca implements a rule-driven cellular automaton over a dense 2D
// grid of state codes. Rules are declared once against sub-regions of the
// grid and applied in registration order, one synchronized pass per frame.
package ca

import "fmt"

// Delta is a unit translation: Vrt is positive downward, Hrz positive
// rightward.
type Delta struct {
	Vrt int
	Hrz int
}

// MaskFn computes which cells of a rule's target window change this frame.
// It reads the grid's pre-frame state through g and must fill mask, whose
// length is win.Cells(), in the window's row-major order. Mask functions
// must not write to the grid; all writes are committed by the engine after
// every rule has been evaluated.
type MaskFn func(g *Grid, win Window, mask []bool) error

// Rule rewrites the cells of a target region that its mask selects.
type Rule struct {
	// Name identifies the rule in errors and diagnostics.
	Name string
	// Target is where the rule writes.
	Target Region
	// To is the state assigned to masked cells.
	To State
	// Reads lists the neighbor translations the mask performs on the target
	// region. They are checked against the grid's bounds at construction so
	// a rule table that cannot fit the grid fails up front.
	Reads []Delta
	// Mask selects the cells to rewrite.
	Mask MaskFn
}

// Window is a region resolved against a concrete grid: a start, count and
// stride per axis.
type Window struct {
	r0, rn, rstep int
	c0, cn, cstep int
}

// Rows returns the number of selected rows.
func (w Window) Rows() int { return w.rn }

// Cols returns the number of selected columns.
func (w Window) Cols() int { return w.cn }

// Cells returns the number of selected cells.
func (w Window) Cells() int { return w.rn * w.cn }

// Cell maps a row-major index within the window to grid coordinates.
func (w Window) Cell(i int) (r, c int) {
	return w.r0 + (i/w.cn)*w.rstep, w.c0 + (i%w.cn)*w.cstep
}

type transKey struct {
	region Region
	delta  Delta
}

// Grid owns the current frame of an automaton: an H×W row-major array of
// state codes, a fixed ordered rule table, and a frame counter. The backing
// array is exclusively owned by the grid; the engine provides no internal
// locking, so a multi-threaded host must confine it to one goroutine.
type Grid struct {
	h, w  int
	cells []uint8
	frame int

	rules []compiledRule
	trans map[transKey]Region
}

type compiledRule struct {
	rule Rule
	win  Window
	mask []bool
}

// New builds a grid with the given dimensions and rule table. Dimensions
// must be positive. Each rule's declared neighbor reads are translated
// against the grid's bounds here, so a rule set declared for slices that
// structurally cannot exist is rejected before the first frame.
func New(h, w int, rules []Rule) (*Grid, error) {
	if h < 1 || w < 1 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", h, w)
	}
	g := &Grid{
		h:     h,
		w:     w,
		cells: make([]uint8, h*w),
		trans: make(map[transKey]Region),
	}
	for _, r := range rules {
		if r.Mask == nil {
			return nil, fmt.Errorf("rule %q: nil mask function", r.Name)
		}
		for _, d := range r.Reads {
			if _, err := g.Neighbor(r.Target, d.Vrt, d.Hrz); err != nil {
				return nil, fmt.Errorf("rule %q: %w", r.Name, err)
			}
		}
		win := g.Window(r.Target)
		g.rules = append(g.rules, compiledRule{
			rule: r,
			win:  win,
			mask: make([]bool, win.Cells()),
		})
	}
	return g, nil
}

// H returns the grid height.
func (g *Grid) H() int { return g.h }

// W returns the grid width.
func (g *Grid) W() int { return g.w }

// Frame returns the number of completed steps.
func (g *Grid) Frame() int { return g.frame }

// Cells exposes the current frame as a row-major code array. The slice is a
// view of the grid's single backing buffer: it is valid until the next Step
// and callers that retain history must copy it.
func (g *Grid) Cells() []uint8 { return g.cells }

// At returns the state at (r, c). Both indices must be in range.
func (g *Grid) At(r, c int) State { return State(g.cells[r*g.w+c]) }

// StateAt is the boundary-safe read: coordinates outside the grid return the
// OffGrid sentinel instead of panicking, so rules can probe "the cell above
// or below" without bounds checks at each site.
func (g *Grid) StateAt(r, c int) State {
	if r < 0 || r >= g.h || c < 0 || c >= g.w {
		return OffGrid
	}
	return State(g.cells[r*g.w+c])
}

// Set writes a state at (r, c). Exposed for seeding test fixtures; rules
// never write directly.
func (g *Grid) Set(r, c int, s State) { g.cells[r*g.w+c] = uint8(s) }

// Window resolves a region against the grid's dimensions.
func (g *Grid) Window(region Region) Window {
	r0, rn, rstep := region.Rows.Resolve(g.h)
	c0, cn, cstep := region.Cols.Resolve(g.w)
	return Window{r0: r0, rn: rn, rstep: rstep, c0: c0, cn: cn, cstep: cstep}
}

// Neighbor translates a region one step per axis within the grid's bounds.
// Results are memoized for the life of the grid; dimensions never change,
// so the same translations recur every frame.
func (g *Grid) Neighbor(region Region, vrt, hrz int) (Region, error) {
	key := transKey{region: region, delta: Delta{Vrt: vrt, Hrz: hrz}}
	if cached, ok := g.trans[key]; ok {
		return cached, nil
	}
	out, err := Translate(region, vrt, hrz, g.h, g.w)
	if err != nil {
		return Region{}, err
	}
	g.trans[key] = out
	return out, nil
}

// Step advances the simulation one frame. Every rule's mask is evaluated
// against the pre-frame array first; only then are all writes committed, in
// registration order. Reads are therefore never affected by same-frame
// writes, and overlapping true masks resolve to the later-registered rule.
// A mask evaluation error is fatal to the frame and propagates unchanged.
func (g *Grid) Step() error {
	for i := range g.rules {
		cr := &g.rules[i]
		clearMask(cr.mask)
		if err := cr.rule.Mask(g, cr.win, cr.mask); err != nil {
			return fmt.Errorf("rule %q: %w", cr.rule.Name, err)
		}
	}
	for i := range g.rules {
		cr := &g.rules[i]
		code := uint8(cr.rule.To)
		for j, on := range cr.mask {
			if on {
				r, c := cr.win.Cell(j)
				g.cells[r*g.w+c] = code
			}
		}
	}
	g.frame++
	return nil
}

// Frames steps the grid and passes each new frame to fn until fn returns
// false or a rule fails. The slice passed to fn is the grid's own buffer.
func (g *Grid) Frames(fn func(cells []uint8) bool) error {
	for {
		if err := g.Step(); err != nil {
			return err
		}
		if !fn(g.cells) {
			return nil
		}
	}
}

// Run is the bounded form of Frames: it produces at most limit frames.
func (g *Grid) Run(limit int, fn func(cells []uint8) bool) error {
	produced := 0
	if limit <= 0 {
		return nil
	}
	return g.Frames(func(cells []uint8) bool {
		produced++
		return fn(cells) && produced < limit
	})
}

func clearMask(m []bool) {
	for i := range m {
		m[i] = false
	}
}
