// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/Mars303004/kpiboard/internal/layout"
	"github.com/Mars303004/kpiboard/internal/widget"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes the page as a self-contained HTML dashboard. Charts
// are drawn server-side as inline SVG, so the page needs no scripts.
type HTMLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

func dashboardTemplate() *template.Template {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // intentional unescaped embedding
			},
		}).Parse(htmlTemplate))
	})
	return htmlTmpl
}

// Format writes the page as a self-contained HTML dashboard to w.
func (h *HTMLFormatter) Format(page *layout.Page, w io.Writer) error {
	data := buildHTMLData(page)
	data.InlineCSS = template.CSS(dashboardCSS) //nolint:gosec // static stylesheet
	if err := dashboardTemplate().Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the HTML dashboard.
type htmlData struct {
	ID          string
	Title       string
	Period      string
	GeneratedAt string
	Columns     int
	TileCount   int
	ErrorCount  int
	Rows        [][]htmlTile
	Envelope    JSONEnvelope

	// Exactly one of InlineCSS and StylesheetHref is set.
	InlineCSS      template.CSS
	StylesheetHref string
}

type htmlTile struct {
	Kind       string
	Title      string
	Icon       string
	Display    string
	Target     string
	Delta      string
	DeltaClass string
	Detail     string
	Span       int

	Progress *progressView
	Gauge    *gaugeView
	Series   *seriesView
	Funnel   *funnelView
	Stars    *starsView
	Error    *errorView
}

type progressView struct {
	Fill      float64
	Label     string
	HasTarget bool
}

// gaugeCircumference is 2*pi*r for the r=40 ring in the gauge viewBox.
var gaugeCircumference = 2 * math.Pi * 40

type gaugeView struct {
	Label     string
	Color     string
	Dash      string
	Range     string
	BandTicks []bandTick
}

type bandTick struct {
	Color string
	Dash  string
	Shift string
}

const (
	chartW = 240.0
	chartH = 100.0
	chartP = 8.0
)

type seriesView struct {
	Line   bool
	Color  string
	Points string
	Dots   []svgPoint
	Bars   []svgBar
	Axis   []svgLabel
}

type svgPoint struct {
	X, Y  string
	Title string
}

type svgBar struct {
	X, Y, W, H string
	Color      string
	Title      string
}

type svgLabel struct {
	X    string
	Text string
}

type funnelView struct {
	Stages   []funnelStage
	Warnings []string
}

type funnelStage struct {
	Name  string
	Count string
	Width string
	Share string
	Color string
}

type starsView struct {
	Filled string
	Empty  string
	Rating string
}

type errorView struct {
	Class   string
	Message string
}

func buildHTMLData(page *layout.Page) htmlData {
	data := htmlData{
		ID:          page.ID,
		Title:       page.Title,
		Period:      page.Period,
		GeneratedAt: page.GeneratedAt.UTC().Format(timeLayout),
		Columns:     page.Columns,
		TileCount:   len(page.Tiles()),
		ErrorCount:  len(page.Errors()),
		Envelope:    NewEnvelope(page),
	}
	if data.Title == "" {
		data.Title = "Dashboard"
	}
	for _, row := range page.Rows {
		tiles := make([]htmlTile, 0, len(row))
		for i, t := range row {
			ht := buildHTMLTile(t.Widget)
			// The last tile of a short row stretches to fill the grid.
			if i == len(row)-1 && page.Columns > len(row) {
				ht.Span = page.Columns - len(row) + 1
			}
			tiles = append(tiles, ht)
		}
		data.Rows = append(data.Rows, tiles)
	}
	return data
}

func buildHTMLTile(wg widget.Widget) htmlTile {
	c := wg.Header()
	t := htmlTile{
		Kind:    string(wg.Kind()),
		Title:   c.Title,
		Icon:    c.Icon,
		Display: c.Display,
		Target:  c.TargetDisplay,
		Detail:  detail(wg),
		Span:    1,
	}
	if c.Delta != nil {
		t.Delta = arrow(c.Delta) + " " + c.DeltaDisplay
		switch {
		case c.Delta.Percent == 0:
			t.DeltaClass = "flat"
		case c.Delta.Favorable:
			t.DeltaClass = "good"
		default:
			t.DeltaClass = "bad"
		}
	}

	switch v := wg.(type) {
	case *widget.ProgressBar:
		t.Progress = &progressView{Fill: v.Fill, Label: v.Label, HasTarget: v.HasTarget}
	case *widget.Gauge:
		t.Gauge = buildGauge(v)
		t.Gauge.Label = c.Display
	case *widget.Series:
		t.Series = buildSeries(v)
	case *widget.Funnel:
		t.Funnel = buildFunnel(v)
	case *widget.StarRating:
		t.Stars = &starsView{
			Filled: strings.Repeat("★", v.Filled),
			Empty:  strings.Repeat("☆", v.Empty),
			Rating: fmt.Sprintf("%.1f / %d", v.Rating, v.Max),
		}
	case *widget.Placeholder:
		t.Error = &errorView{Class: string(v.Class), Message: v.Message}
	}
	return t
}

func buildGauge(g *widget.Gauge) *gaugeView {
	view := &gaugeView{
		Color: g.Color,
		Dash:  dash(g.Fill * gaugeCircumference),
		Range: humanize.Ftoa(g.Min) + "–" + humanize.Ftoa(g.Max),
	}
	span := g.Max - g.Min
	// Bands are drawn as a thin outer ring, each arc offset to its start.
	for _, b := range g.Buckets {
		length := (b.Hi - b.Lo) / span * gaugeCircumference
		offset := (b.Lo - g.Min) / span * gaugeCircumference
		view.BandTicks = append(view.BandTicks, bandTick{
			Color: b.Color,
			Dash:  dash(length),
			Shift: num(-offset),
		})
	}
	return view
}

func dash(length float64) string {
	return num(length) + " " + num(gaugeCircumference)
}

func buildSeries(s *widget.Series) *seriesView {
	n := len(s.Points)
	view := &seriesView{Line: s.Style == widget.KindLineSeries, Color: s.Colors[0]}
	lo, hi := s.Min, s.Max
	if view.Line {
		// Pad the y axis so a flat line sits mid-chart.
		pad := (hi - lo) * 0.1
		if pad == 0 {
			pad = math.Max(1, math.Abs(hi)*0.1)
		}
		lo, hi = lo-pad, hi+pad
	} else {
		lo = math.Min(0, lo)
		if hi <= lo {
			hi = lo + 1
		}
	}
	innerW := chartW - 2*chartP
	innerH := chartH - 2*chartP
	y := func(v float64) float64 { return chartP + innerH - (v-lo)/(hi-lo)*innerH }

	if view.Line {
		step := innerW
		if n > 1 {
			step = innerW / float64(n-1)
		}
		pts := make([]string, n)
		for i, p := range s.Points {
			x := chartP + float64(i)*step
			if n == 1 {
				x = chartW / 2
			}
			pts[i] = num(x) + "," + num(y(p))
			view.Dots = append(view.Dots, svgPoint{X: num(x), Y: num(y(p)), Title: s.Labels[i] + ": " + humanize.Ftoa(p)})
			view.Axis = append(view.Axis, svgLabel{X: num(x), Text: s.Labels[i]})
		}
		view.Points = strings.Join(pts, " ")
		return view
	}

	slot := innerW / float64(n)
	w := slot * 0.7
	for i, p := range s.Points {
		x := chartP + float64(i)*slot + (slot-w)/2
		top := y(p)
		view.Bars = append(view.Bars, svgBar{
			X:     num(x),
			Y:     num(top),
			W:     num(w),
			H:     num(y(lo) - top),
			Color: s.Colors[i%len(s.Colors)],
			Title: s.Labels[i] + ": " + humanize.Ftoa(p),
		})
		view.Axis = append(view.Axis, svgLabel{X: num(x + w/2), Text: s.Labels[i]})
	}
	return view
}

func buildFunnel(f *widget.Funnel) *funnelView {
	view := &funnelView{Warnings: f.Warnings}
	for _, s := range f.Stages {
		width := math.Max(4, math.Min(100, s.Share*100))
		view.Stages = append(view.Stages, funnelStage{
			Name:  s.Name,
			Count: humanize.Ftoa(s.Count),
			Width: num(width),
			Share: humanize.Ftoa(math.Round(s.Share*1000)/10) + "%",
			Color: s.Color,
		})
	}
	return view
}

// num formats SVG coordinates with two decimals and no trailing zeros.
func num(f float64) string {
	r := math.Round(f*100) / 100
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
