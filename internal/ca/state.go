package ca

import (
	"fmt"
	"image/color"
)

// State is a cell state code. Codes are dense non-negative integers starting
// at zero so they can index the registry's color and glyph tables directly.
type State uint8

// OffGrid is the sentinel returned by boundary queries for cells outside the
// grid. It is never stored in a grid and has no registry entry.
const OffGrid State = 0xFF

// Code returns the state's integer code.
func (s State) Code() int { return int(s) }

// StateSpec declares one cell state: its code, single-character glyph and
// display color.
type StateSpec struct {
	State State
	Glyph rune
	Color color.RGBA
}

// Registry is the immutable lookup table for a closed set of cell states.
// It is built once at startup and shared by reference; consumers index it
// with the codes stored in a grid.
type Registry struct {
	glyphs  []rune
	palette []color.RGBA
}

// NewRegistry builds a registry from the given specs. Codes must be dense,
// start at zero and be declared in order; anything else is a programmer
// error in the state table.
func NewRegistry(specs []StateSpec) (*Registry, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("state registry: no states declared")
	}
	r := &Registry{
		glyphs:  make([]rune, len(specs)),
		palette: make([]color.RGBA, len(specs)),
	}
	for i, spec := range specs {
		if spec.State.Code() != i {
			return nil, fmt.Errorf("state registry: code %d declared at position %d, codes must be dense from 0", spec.State.Code(), i)
		}
		r.glyphs[i] = spec.Glyph
		r.palette[i] = spec.Color
	}
	return r, nil
}

// ColorOf returns the display color for a state code. A code outside the
// declared range means a rule wrote an undefined state into the grid, so it
// panics rather than substituting a value.
func (r *Registry) ColorOf(s State) color.RGBA {
	return r.palette[s.Code()]
}

// GlyphOf returns the display character for a state code. Panics on codes
// outside the declared range, like ColorOf.
func (r *Registry) GlyphOf(s State) rune {
	return r.glyphs[s.Code()]
}

// States returns the number of declared states.
func (r *Registry) States() int { return len(r.palette) }

// Palette returns the dense code-indexed color table. Callers must treat it
// as read-only; it backs the vectorized code-to-color path in the renderer.
func (r *Registry) Palette() []color.RGBA { return r.palette }

// Text renders a row-major cell buffer as one glyph per cell, rows separated
// by newlines. Useful for terminal output and test diagnostics.
func (r *Registry) Text(cells []uint8, w int) string {
	if w <= 0 || len(cells) == 0 {
		return ""
	}
	out := make([]rune, 0, len(cells)+len(cells)/w)
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			out = append(out, '\n')
		}
		out = append(out, r.glyphs[c])
	}
	return string(out)
}
