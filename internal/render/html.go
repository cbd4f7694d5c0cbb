package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/pkg/errors"

	"golife/pkg/life"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.Refresh}}">
<title>game of life — generation {{.Generation}}</title>
<style>
body { background: #111; color: #9e9; }
pre { font-size: 16px; line-height: 1; }
</style>
</head>
<body>
<pre>{{range .Rows}}{{.}}
{{end}}</pre>
<p>{{.Status}}</p>
</body>
</html>
`))

type pageData struct {
	Refresh    int
	Generation int
	Rows       []string
	Status     string
}

// HTMLRenderer overwrites a single HTML file each generation. The page
// carries a meta-refresh directive so an open browser tab reloads itself
// and shows the next generation.
type HTMLRenderer struct {
	path    string
	refresh int
}

// NewHTMLRenderer returns a renderer writing to path, with the page reload
// interval derived from the tick interval (minimum one second, the smallest
// meta-refresh granularity).
func NewHTMLRenderer(path string, interval time.Duration) *HTMLRenderer {
	refresh := int(interval / time.Second)
	if refresh < 1 {
		refresh = 1
	}
	return &HTMLRenderer{path: path, refresh: refresh}
}

// Path returns the output file location, for reporting at startup.
func (r *HTMLRenderer) Path() string { return r.path }

// Render rewrites the page with the given generation.
func (r *HTMLRenderer) Render(generation int, g *life.Grid) error {
	cells := g.Cells()
	w := g.Width()
	rows := make([]string, g.Height())
	for row := range rows {
		line := make([]rune, w)
		for col := 0; col < w; col++ {
			line[col] = '·'
			if cells[row*w+col] == 1 {
				line[col] = '█'
			}
		}
		rows[row] = string(line)
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Refresh:    r.refresh,
		Generation: generation,
		Rows:       rows,
		Status:     statusLine(generation, g.Population()),
	})
	if err != nil {
		return errors.Wrap(err, "render page template")
	}
	if err := os.WriteFile(r.path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", r.path)
	}
	return nil
}

func statusLine(generation, population int) string {
	return fmt.Sprintf("generation %d — population %d", generation, population)
}
