package app

import (
	"flag"
	"time"

	"github.com/pkg/errors"

	"golife/pkg/life"
)

// Output modes selectable on the command line.
const (
	OutputConsole = "console"
	OutputHTML    = "html"
	OutputGUI     = "gui"
)

// RandomPattern selects a deterministic random fill instead of a library
// pattern.
const RandomPattern = "random"

// Config represents the command-line parameters for one simulation run.
type Config struct {
	Pattern     string
	Width       int
	Height      int
	Generations int
	Interval    time.Duration
	Output      string
	File        string
	Seed        int64
	Scale       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:     "glider",
		Width:       25,
		Height:      25,
		Generations: 60,
		Interval:    500 * time.Millisecond,
		Output:      OutputConsole,
		Seed:        42,
		Scale:       8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern name, raw ./X notation, or \"random\"")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to compute after the initial state")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.StringVar(&c.Output, "output", c.Output, "output mode: console, html, or gui")
	fs.StringVar(&c.File, "file", c.File, "html output path (default life-<unixtime>.html)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for gui output")
}

// Validate checks the configuration eagerly, before any output is produced.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(life.ErrInvalidArgument, "grid dimensions %dx%d must be positive", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.Wrapf(life.ErrInvalidArgument, "generations %d must be non-negative", c.Generations)
	}
	if c.Interval <= 0 {
		return errors.Wrapf(life.ErrInvalidArgument, "interval %s must be positive", c.Interval)
	}
	if c.Scale <= 0 {
		return errors.Wrapf(life.ErrInvalidArgument, "scale %d must be positive", c.Scale)
	}
	switch c.Output {
	case OutputConsole, OutputHTML, OutputGUI:
		return nil
	default:
		return errors.Wrapf(life.ErrInvalidArgument, "unknown output mode %q", c.Output)
	}
}
