// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

// Package layout arranges rendered widgets into a dashboard page. A Layout
// is pure placement: it names metrics and chart specs by grid position and
// never carries metric values itself.
package layout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mars303004/kpiboard/internal/registry"
	"github.com/Mars303004/kpiboard/internal/widget"
)

// DefaultColumns is the grid width used when a layout leaves Columns unset.
const DefaultColumns = 4

// Cell places one metric, drawn as Chart, at a grid position.
type Cell struct {
	Metric string
	Row    int
	Col    int
	Chart  widget.ChartSpec
}

// Layout is an ordered set of cells on a grid Columns wide.
type Layout struct {
	Title   string
	Columns int
	Cells   []Cell
}

// columns returns the effective grid width.
func (l Layout) columns() int {
	if l.Columns > 0 {
		return l.Columns
	}
	return DefaultColumns
}

// Validate checks placement only: positions are on the grid, no two cells
// overlap, and every cell names a metric. Chart specs are checked by
// widget.ChartSpec.Validate and metric references at render time.
func (l Layout) Validate() error {
	var errs []string
	if l.Columns < 0 {
		errs = append(errs, fmt.Sprintf("columns: must be non-negative, got %d", l.Columns))
	}
	cols := l.columns()
	seen := make(map[[2]int]string, len(l.Cells))
	for i, c := range l.Cells {
		prefix := fmt.Sprintf("cells[%d]", i)
		if strings.TrimSpace(c.Metric) == "" {
			errs = append(errs, prefix+".metric: must not be empty")
		}
		if c.Row < 0 {
			errs = append(errs, fmt.Sprintf("%s.row: must be non-negative, got %d", prefix, c.Row))
		}
		if c.Col < 0 || c.Col >= cols {
			errs = append(errs, fmt.Sprintf("%s.col: must be in [0, %d), got %d", prefix, cols, c.Col))
		}
		pos := [2]int{c.Row, c.Col}
		if other, ok := seen[pos]; ok {
			errs = append(errs, fmt.Sprintf("%s: position (%d, %d) already holds %q", prefix, c.Row, c.Col, other))
			continue
		}
		seen[pos] = c.Metric
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid layout:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Tile is one placed widget. Err is set when the widget is a placeholder.
type Tile struct {
	Row    int           `json:"row"`
	Col    int           `json:"col"`
	Metric string        `json:"metric"`
	Widget widget.Widget `json:"widget"`
	Err    error         `json:"-"`
}

// Page is the output of one render pass.
type Page struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Period      string    `json:"period,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	Columns     int       `json:"columns"`
	Rows        [][]Tile  `json:"rows"`
}

// Tiles returns every tile in row-major order.
func (p *Page) Tiles() []Tile {
	var out []Tile
	for _, row := range p.Rows {
		out = append(out, row...)
	}
	return out
}

// Errors returns the tiles that rendered as placeholders.
func (p *Page) Errors() []Tile {
	var out []Tile
	for _, row := range p.Rows {
		for _, t := range row {
			if t.Err != nil {
				out = append(out, t)
			}
		}
	}
	return out
}

// Options tunes a render pass.
type Options struct {
	// Period is shown in the page header, e.g. "2025-06".
	Period string

	// Renderer carries display options such as the currency symbol.
	Renderer widget.Renderer

	// Now returns the generation timestamp. Defaults to time.Now.
	Now func() time.Time

	// Logger receives per-tile failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// Compose runs one render pass of l against reg. Each failing cell becomes
// a placeholder tile; Compose itself fails only when ctx is done, in which
// case no page is returned.
func Compose(ctx context.Context, reg *registry.Registry, l Layout, opts Options) (*Page, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cells := make([]Cell, len(l.Cells))
	copy(cells, l.Cells)
	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	page := &Page{
		ID:          uuid.NewString(),
		Title:       l.Title,
		Period:      opts.Period,
		GeneratedAt: now().UTC(),
		Columns:     l.columns(),
		Rows:        make([][]Tile, 0),
	}

	lastRow := -1
	for _, c := range cells {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tile := renderCell(reg, c, opts.Renderer)
		if tile.Err != nil {
			logger.Warn("widget render failed",
				"metric", c.Metric, "kind", c.Chart.Kind, "class", Classify(tile.Err), "error", tile.Err)
		}
		if c.Row != lastRow {
			page.Rows = append(page.Rows, nil)
			lastRow = c.Row
		}
		page.Rows[len(page.Rows)-1] = append(page.Rows[len(page.Rows)-1], tile)
	}
	return page, nil
}

func renderCell(reg *registry.Registry, c Cell, r widget.Renderer) Tile {
	tile := Tile{Row: c.Row, Col: c.Col, Metric: c.Metric}
	rec, err := reg.Get(c.Metric)
	if err == nil {
		tile.Widget, err = r.Render(rec, c.Chart)
	}
	if err != nil {
		title := c.Chart.Title
		if title == "" {
			title = c.Metric
		}
		ph := widget.NewPlaceholder(title, Classify(err), err)
		ph.Metric = c.Metric
		tile.Widget = ph
		tile.Err = err
	}
	return tile
}

// Classify maps a render error to its placeholder class.
func Classify(err error) widget.ErrorClass {
	var (
		nf  *registry.NotFoundError
		ce  *widget.ConfigurationError
		ise *widget.InvalidSeriesError
	)
	switch {
	case errors.As(err, &nf):
		return widget.ClassNotFound
	case errors.As(err, &ce):
		return widget.ClassConfiguration
	case errors.As(err, &ise):
		return widget.ClassInvalidSeries
	default:
		return widget.ClassUnknown
	}
}

// Render loads a registry from src and composes l against it. Source
// failures abort the pass; widget failures do not.
func Render(ctx context.Context, src registry.Source, l Layout, opts Options) (*Page, error) {
	reg, err := registry.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return Compose(ctx, reg, l, opts)
}
