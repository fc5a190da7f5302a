package core

import "rainmatrix/internal/ca"

// Size describes the dimensions of a simulation grid.
type Size struct {
	H int
	W int
}

// Sim is the contract a displayable automaton implements: a named,
// fixed-size grid that advances one frame per Step and exposes its cells as
// dense state codes together with the registry that decodes them.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Frame() int
	Cells() []uint8
	Registry() *ca.Registry
}

// Factory constructs a Sim from a string configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name. Empty names
// and nil factories are ignored.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
