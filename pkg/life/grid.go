package life

import "github.com/pkg/errors"

// Cell identifies one grid position.
type Cell struct {
	Row int
	Col int
}

// Grid is a finite two-dimensional field of live and dead cells, stored
// row-major with one byte per cell. A Grid is never mutated after
// construction; advancing the simulation or seeding cells produces a new
// Grid, so a generation can be read while its successor is computed.
type Grid struct {
	width  int
	height int
	cells  []uint8
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "grid dimensions %dx%d", width, height)
	}
	return &Grid{width: width, height: height, cells: make([]uint8, width*height)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Cells exposes the backing buffer in row-major order, 1 for live and 0 for
// dead. Callers must treat the slice as read-only.
func (g *Grid) Cells() []uint8 { return g.cells }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// alive reports liveness without a bounds check. Off-grid positions are
// permanently dead; there is no wraparound.
func (g *Grid) alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row*g.width+col] == 1
}

// IsAlive reports whether the cell at (row, col) is live.
func (g *Grid) IsAlive(row, col int) (bool, error) {
	if !g.inBounds(row, col) {
		return false, errors.Wrapf(ErrOutOfBounds, "cell (%d,%d) on %dx%d grid", row, col, g.width, g.height)
	}
	return g.cells[row*g.width+col] == 1, nil
}

// LiveNeighborCount counts live cells in the Moore neighborhood of
// (row, col). Neighbors beyond the boundary count as dead.
func (g *Grid) LiveNeighborCount(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, errors.Wrapf(ErrOutOfBounds, "cell (%d,%d) on %dx%d grid", row, col, g.width, g.height)
	}
	return g.neighbors(row, col), nil
}

func (g *Grid) neighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.alive(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

// NextGeneration returns a new grid advanced by one generation under the
// standard rule: a live cell with 2 or 3 live neighbors survives, a dead
// cell with exactly 3 live neighbors is born, everything else is dead.
// The receiver is left untouched.
func (g *Grid) NextGeneration() *Grid {
	next := &Grid{width: g.width, height: g.height, cells: make([]uint8, len(g.cells))}
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			n := g.neighbors(row, col)
			idx := row*g.width + col
			if (g.cells[idx] == 1 && (n == 2 || n == 3)) || (g.cells[idx] == 0 && n == 3) {
				next.cells[idx] = 1
			}
		}
	}
	return next
}

// Seed returns a copy of the grid with the provided cells set live. The
// whole seed is rejected if any coordinate falls outside the grid, so a run
// never starts from a silently clipped first generation.
func (g *Grid) Seed(cells []Cell) (*Grid, error) {
	for _, c := range cells {
		if !g.inBounds(c.Row, c.Col) {
			return nil, errors.Wrapf(ErrPatternDoesNotFit, "cell (%d,%d) outside %dx%d grid", c.Row, c.Col, g.width, g.height)
		}
	}
	next := &Grid{width: g.width, height: g.height, cells: append([]uint8(nil), g.cells...)}
	for _, c := range cells {
		next.cells[c.Row*g.width+c.Col] = 1
	}
	return next, nil
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == 1 {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have identical dimensions and state.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
