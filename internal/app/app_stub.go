//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"golife/pkg/life"
)

// runGUI reports that the windowed build tag is missing. Console and html
// output work in every build.
func runGUI(*Config, *life.Grid) error {
	return errors.New("gui output requires building with the 'ebiten' tag, e.g. `go build -tags ebiten ./cmd/life`")
}
