package life

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseGliderNotation(t *testing.T) {
	p, err := ParsePattern(".X/..X/XXX")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}

	expects := map[[2]int]bool{
		{0, 1}: true,
		{1, 2}: true,
		{2, 0}: true,
		{2, 1}: true,
		{2, 2}: true,
	}
	cells := p.Cells(0, 0)
	if len(cells) != len(expects) {
		t.Fatalf("glider has %d live cells, want %d", len(cells), len(expects))
	}
	for _, c := range cells {
		if !expects[[2]int{c.Row, c.Col}] {
			t.Fatalf("unexpected live cell (%d,%d)", c.Row, c.Col)
		}
	}

	rows, cols := p.Extent()
	if rows != 3 || cols != 3 {
		t.Fatalf("glider extent = %dx%d, want 3x3", rows, cols)
	}
}

func TestParseTreatsSpaceAsDead(t *testing.T) {
	p, err := ParsePattern("X X")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if len(p.Cells(0, 0)) != 2 {
		t.Fatalf("got %d live cells, want 2", len(p.Cells(0, 0)))
	}
}

func TestParseRejectsEmptyAndDeadNotation(t *testing.T) {
	for _, notation := range []string{"", "/", "///", "...", "././."} {
		if _, err := ParsePattern(notation); !errors.Is(err, ErrBadNotation) {
			t.Fatalf("ParsePattern(%q) err = %v, want ErrBadNotation", notation, err)
		}
	}
}

func TestBuiltinNamesKeepRegistrationOrder(t *testing.T) {
	want := []string{"block", "blink", "bounce", "glider", "spaceship", "expanding", "pulsar"}
	names := Names()
	if len(names) < len(want) {
		t.Fatalf("Names() = %v, want at least the built-in set", names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestLookupUnknownPattern(t *testing.T) {
	if _, err := Lookup("gliderx"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Lookup err = %v, want ErrUnknownPattern", err)
	}
	if _, err := Instantiate("gliderx", 0, 0); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Instantiate err = %v, want ErrUnknownPattern", err)
	}
}

func TestInstantiateTranslatesByOrigin(t *testing.T) {
	cells, err := Instantiate("block", 2, 3)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	expects := map[[2]int]bool{
		{2, 3}: true,
		{2, 4}: true,
		{3, 3}: true,
		{3, 4}: true,
	}
	if len(cells) != len(expects) {
		t.Fatalf("block has %d cells, want %d", len(cells), len(expects))
	}
	for _, c := range cells {
		if !expects[[2]int{c.Row, c.Col}] {
			t.Fatalf("unexpected cell (%d,%d)", c.Row, c.Col)
		}
	}
}

func TestRegisterKeepsFirstEntry(t *testing.T) {
	Register("block", "X")
	p, err := Lookup("block")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rows, cols := p.Extent(); rows != 2 || cols != 2 {
		t.Fatalf("block extent = %dx%d after duplicate Register, want 2x2", rows, cols)
	}
}

func TestPulsarOscillatesWithPeriodThree(t *testing.T) {
	p, err := Lookup("pulsar")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	g, err := NewGrid(17, 17)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g, err = g.Seed(p.Cells(2, 2))
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	stepped := g
	for i := 0; i < 3; i++ {
		stepped = stepped.NextGeneration()
	}
	if !stepped.Equal(g) {
		t.Fatal("pulsar did not return to its initial state after 3 generations")
	}
}
