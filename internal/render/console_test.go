package render

import (
	"bytes"
	"strings"
	"testing"

	"golife/pkg/life"
)

func testGrid(t *testing.T, width, height int, cells ...life.Cell) *life.Grid {
	t.Helper()
	g, err := life.NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g, err = g.Seed(cells)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return g
}

func TestConsoleRenderFrame(t *testing.T) {
	g := testGrid(t, 4, 3, life.Cell{Row: 0, Col: 1}, life.Cell{Row: 2, Col: 3})

	var buf bytes.Buffer
	r := NewConsoleRenderer(&buf, false)
	if err := r.Render(7, g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, liveGlyph); got != 2 {
		t.Fatalf("frame has %d live glyphs, want 2", got)
	}
	if got := strings.Count(out, deadGlyph); got != 10 {
		t.Fatalf("frame has %d dead glyphs, want 10", got)
	}
	if got := strings.Count(out, "\n"); got != 4 {
		t.Fatalf("frame has %d lines, want 3 grid rows plus status", got)
	}
	if !strings.Contains(out, "generation 7") {
		t.Fatal("frame missing generation counter")
	}
	if strings.Contains(out, clearScreen) {
		t.Fatal("append-mode frame must not clear the screen")
	}
}

func TestConsoleRenderInPlaceClearsScreen(t *testing.T) {
	g := testGrid(t, 2, 2)

	var buf bytes.Buffer
	r := NewConsoleRenderer(&buf, true)
	if err := r.Render(0, g); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(buf.String(), clearScreen) {
		t.Fatal("in-place frame must start by clearing the screen")
	}
}
