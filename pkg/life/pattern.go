package life

import (
	"strings"

	"github.com/pkg/errors"
)

// Pattern is an immutable set of relative live-cell coordinates anchored at
// (0,0), parsed from slash notation: rows joined by '/', with '.' or space
// for dead cells and any other rune for live ones. A glider is ".X/..X/XXX".
type Pattern struct {
	cells []Cell
	rows  int
	cols  int
}

// ParsePattern translates slash notation into a Pattern.
func ParsePattern(notation string) (*Pattern, error) {
	trimmed := strings.Trim(notation, "/")
	if trimmed == "" {
		return nil, errors.Wrapf(ErrBadNotation, "empty notation %q", notation)
	}
	p := &Pattern{}
	for row, line := range strings.Split(trimmed, "/") {
		runes := []rune(line)
		for col, ch := range runes {
			if ch == '.' || ch == ' ' {
				continue
			}
			p.cells = append(p.cells, Cell{Row: row, Col: col})
		}
		if len(runes) > p.cols {
			p.cols = len(runes)
		}
		p.rows = row + 1
	}
	if len(p.cells) == 0 {
		return nil, errors.Wrapf(ErrBadNotation, "notation %q has no live cells", notation)
	}
	return p, nil
}

// Extent returns the pattern's bounding box as rows and columns.
func (p *Pattern) Extent() (rows, cols int) { return p.rows, p.cols }

// Cells returns the pattern's coordinates translated by the given origin.
func (p *Pattern) Cells(originRow, originCol int) []Cell {
	out := make([]Cell, len(p.cells))
	for i, c := range p.cells {
		out[i] = Cell{Row: c.Row + originRow, Col: c.Col + originCol}
	}
	return out
}

var (
	patterns     = map[string]*Pattern{}
	patternNames []string
)

// Register adds a pattern to the library under the provided name. Empty
// names, duplicates, and unparseable notation are ignored, keeping the
// first registration.
func Register(name, notation string) {
	if name == "" {
		return
	}
	if _, exists := patterns[name]; exists {
		return
	}
	p, err := ParsePattern(notation)
	if err != nil {
		return
	}
	patterns[name] = p
	patternNames = append(patternNames, name)
}

// Names lists the registered pattern names in registration order for help
// text.
func Names() []string {
	return append([]string(nil), patternNames...)
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (*Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	return p, nil
}

// Instantiate resolves a registered pattern and translates it by the given
// origin.
func Instantiate(name string, originRow, originCol int) ([]Cell, error) {
	p, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return p.Cells(originRow, originCol), nil
}
