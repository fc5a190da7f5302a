package ca

import "fmt"

// OutOfBoundsError reports a translation that would push an entire region
// off the grid. It carries the offending bound, the requested delta and the
// grid limit in that direction for diagnostics. This is a configuration
// error in the rule table, not a runtime data error.
type OutOfBoundsError struct {
	Current Bound
	Delta   int
	Limit   int
}

func (e *OutOfBoundsError) Error() string {
	cur := e.Current.String()
	if cur == "" {
		cur = "open"
	}
	return fmt.Sprintf("slice out of bounds: %s %+d exceeds limit %d", cur, e.Delta, e.Limit)
}

// Translate shifts a region by vrt rows (positive is down) and hrz columns
// (positive is right) on a grid of the given height and width, clipping to
// the grid's bounds.
//
// Open bounds are preserved: a region pinned to an edge keeps covering that
// edge no matter how it is shifted. A closed bound shifted past the edge it
// is moving toward becomes open when that clips the region, and fails with
// *OutOfBoundsError when it would carry the whole region off the grid:
// shifting a start past the far edge, or a stop past the near edge, leaves
// nothing selectable. Strides pass through untouched.
//
// Translation depends only on shapes and bounds, never on cell values, so
// results for a fixed-size grid can be computed once at rule registration
// and reused every frame.
func Translate(region Region, vrt, hrz, height, width int) (Region, error) {
	rows, err := translateSpan(region.Rows, vrt, height)
	if err != nil {
		return Region{}, fmt.Errorf("translate rows of %s by %+d: %w", region, vrt, err)
	}
	cols, err := translateSpan(region.Cols, hrz, width)
	if err != nil {
		return Region{}, fmt.Errorf("translate cols of %s by %+d: %w", region, hrz, err)
	}
	return Region{Rows: rows, Cols: cols}, nil
}

func translateSpan(s Span, delta, size int) (Span, error) {
	start, err := translateStart(s.Start, delta, size)
	if err != nil {
		return Span{}, err
	}
	stop, err := translateStop(s.Stop, delta, size)
	if err != nil {
		return Span{}, err
	}
	return Span{Start: start, Stop: stop, Step: s.Step}, nil
}

// translateStart shifts a span's start. Moving toward the near edge clips to
// open; moving past the far edge means the whole span left the grid.
func translateStart(b Bound, delta, size int) (Bound, error) {
	if delta == 0 || b.IsOpen() {
		return b, nil
	}
	n := b.Index() + delta
	if delta > 0 {
		// Negative indices live in [-size, -1], non-negative in [0, size-1].
		limit := size - 1
		if b.Index() < 0 {
			limit = -1
		}
		if n > limit {
			return Bound{}, &OutOfBoundsError{Current: b, Delta: delta, Limit: size}
		}
		return Closed(n), nil
	}
	lower := 0
	if b.Index() < 0 {
		lower = -size
	}
	if n < lower {
		return Open(), nil
	}
	return Closed(n), nil
}

// translateStop mirrors translateStart: moving toward the far edge clips to
// open, moving past the near edge is a hard violation.
func translateStop(b Bound, delta, size int) (Bound, error) {
	if delta == 0 || b.IsOpen() {
		return b, nil
	}
	n := b.Index() + delta
	if delta > 0 {
		limit := size - 1
		if b.Index() < 0 {
			limit = -1
		}
		if n > limit {
			return Open(), nil
		}
		return Closed(n), nil
	}
	lower := 0
	if b.Index() < 0 {
		lower = -size
	}
	if n < lower {
		return Bound{}, &OutOfBoundsError{Current: b, Delta: delta, Limit: size}
	}
	return Closed(n), nil
}
