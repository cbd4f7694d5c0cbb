package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"

	"golife/internal/render"
	"golife/pkg/life"
)

// Run executes a single simulation run: resolve the pattern, seed the grid,
// then advance generation by generation at the configured interval, handing
// each state to the selected renderer. Status output goes to out.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	grid, err := buildGrid(cfg)
	if err != nil {
		return err
	}
	if cfg.Output == OutputGUI {
		return runGUI(cfg, grid)
	}

	var renderer render.Renderer
	var bar *pb.ProgressBar
	switch cfg.Output {
	case OutputConsole:
		renderer = render.NewConsoleRenderer(out, true)
	case OutputHTML:
		path := cfg.File
		if path == "" {
			path = fmt.Sprintf("life-%d.html", time.Now().Unix())
		}
		h := render.NewHTMLRenderer(path, cfg.Interval)
		fmt.Fprintf(out, "writing %s — open it in a browser to watch\n", h.Path())
		bar = pb.New(cfg.Generations + 1).SetWriter(out).Start()
		renderer = h
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	err = life.Run(ctx, grid, cfg.Generations, func(generation int, g *life.Grid) error {
		if generation > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
		if err := renderer.Render(generation, g); err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
		return nil
	})
	if bar != nil {
		bar.Finish()
	}
	return err
}

// buildGrid seeds the initial generation. Library patterns are centered on
// the grid; a pattern larger than the grid rejects the whole run.
func buildGrid(cfg *Config) (*life.Grid, error) {
	if cfg.Pattern == RandomPattern {
		return life.RandomGrid(cfg.Width, cfg.Height, cfg.Seed, life.DefaultRandomDensity)
	}
	p, err := resolvePattern(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	rows, cols := p.Extent()
	if rows > cfg.Height || cols > cfg.Width {
		return nil, errors.Wrapf(life.ErrPatternDoesNotFit,
			"pattern %q spans %d rows x %d cols, grid is %d rows x %d cols",
			cfg.Pattern, rows, cols, cfg.Height, cfg.Width)
	}
	empty, err := life.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return empty.Seed(p.Cells((cfg.Height-rows)/2, (cfg.Width-cols)/2))
}

// resolvePattern tries the library first and falls back to parsing the
// argument as raw notation when it looks like one. A plain name that is not
// registered stays an unknown-pattern error so typos are reported as such.
func resolvePattern(arg string) (*life.Pattern, error) {
	p, err := life.Lookup(arg)
	if err == nil {
		return p, nil
	}
	if strings.ContainsAny(arg, "/.") {
		return life.ParsePattern(arg)
	}
	return nil, err
}
