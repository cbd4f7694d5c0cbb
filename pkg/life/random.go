package life

import "golife/pkg/core"

// DefaultRandomDensity is the live-cell probability used for random boards.
const DefaultRandomDensity = 0.15

// RandomGrid returns a grid seeded with random live cells at the given
// density. The fill is deterministic per seed.
func RandomGrid(width, height int, seed int64, density float64) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	core.NewRNG(seed).FillDensity(g.cells, density)
	return g, nil
}
