package ca

import (
	"fmt"
	"strconv"
	"strings"
)

// Bound is one endpoint of a span. A bound is either closed on a concrete
// index (which may be negative, counting back from the edge) or open,
// meaning "to the edge of the grid".
type Bound struct {
	n      int
	closed bool
}

// Closed returns a bound fixed at index n.
func Closed(n int) Bound { return Bound{n: n, closed: true} }

// Open returns an unbounded endpoint.
func Open() Bound { return Bound{} }

// IsOpen reports whether the bound is unbounded.
func (b Bound) IsOpen() bool { return !b.closed }

// Index returns the concrete index of a closed bound. Only meaningful when
// IsOpen is false.
func (b Bound) Index() int { return b.n }

func (b Bound) String() string {
	if b.IsOpen() {
		return ""
	}
	return strconv.Itoa(b.n)
}

// Span is a half-open index range with an optional stride, the shape of one
// axis of a Region. A zero Step means 1.
type Span struct {
	Start Bound
	Stop  Bound
	Step  int
}

// All spans the whole axis.
func All() Span { return Span{} }

// Range spans [start, stop).
func Range(start, stop int) Span { return Span{Start: Closed(start), Stop: Closed(stop)} }

// From spans [start, edge).
func From(start int) Span { return Span{Start: Closed(start)} }

// To spans [edge, stop).
func To(stop int) Span { return Span{Stop: Closed(stop)} }

// At spans the single index n, i.e. [n, n+1). Negative n selects from the
// far edge, so At(-1) is the last row or column.
func At(n int) Span {
	if n == -1 {
		// n+1 would close the span at index 0 instead of the far edge.
		return Span{Start: Closed(-1)}
	}
	return Span{Start: Closed(n), Stop: Closed(n + 1)}
}

func (s Span) String() string {
	var b strings.Builder
	b.WriteString(s.Start.String())
	b.WriteByte(':')
	b.WriteString(s.Stop.String())
	if s.Step > 1 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(s.Step))
	}
	return b.String()
}

// Resolve clamps the span against an axis of the given size and returns the
// concrete start index, the number of selected indices, and the stride.
// Like a slice expression, an inverted or fully off-axis span resolves to
// zero cells rather than a negative count.
func (s Span) Resolve(size int) (start, count, step int) {
	step = s.Step
	if step <= 0 {
		step = 1
	}

	start = 0
	if !s.Start.IsOpen() {
		start = s.Start.Index()
		if start < 0 {
			start += size
		}
		start = clamp(start, 0, size)
	}

	stop := size
	if !s.Stop.IsOpen() {
		stop = s.Stop.Index()
		if stop < 0 {
			stop += size
		}
		stop = clamp(stop, 0, size)
	}

	if stop <= start {
		return start, 0, step
	}
	return start, (stop - start + step - 1) / step, step
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Region is a rectangular sub-selection of a grid: a row span and a column
// span. Regions are value types and comparable, which lets translations be
// memoized by key.
type Region struct {
	Rows Span
	Cols Span
}

// Everywhere selects the whole grid.
func Everywhere() Region { return Region{} }

// Row selects a single full row.
func Row(n int) Region { return Region{Rows: At(n)} }

func (r Region) String() string {
	return fmt.Sprintf("[%s, %s]", r.Rows, r.Cols)
}
