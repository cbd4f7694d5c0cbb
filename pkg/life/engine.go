package life

import (
	"context"

	"github.com/pkg/errors"
)

// GenerationFunc receives each generation in order. Generation 0 is the
// initial state.
type GenerationFunc func(generation int, g *Grid) error

// Run advances the grid through the requested number of generations,
// invoking fn for generation 0 through generations inclusive. The iteration
// carries no state between runs and never detects stabilization; it ends
// when the count is reached, the context is canceled, or fn returns an
// error.
func Run(ctx context.Context, initial *Grid, generations int, fn GenerationFunc) error {
	if initial == nil {
		return errors.Wrap(ErrInvalidArgument, "nil initial grid")
	}
	if generations < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative generation count %d", generations)
	}
	grid := initial
	for i := 0; i <= generations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(i, grid); err != nil {
			return err
		}
		if i < generations {
			grid = grid.NextGeneration()
		}
	}
	return nil
}
