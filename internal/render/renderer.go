package render

import "golife/pkg/life"

// Renderer displays one generation of a grid. Implementations own the only
// externally observable side effects of a run; the simulation core itself
// stays pure.
type Renderer interface {
	Render(generation int, g *life.Grid) error
}
