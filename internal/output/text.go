// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Mars303004/kpiboard/internal/layout"
	"github.com/Mars303004/kpiboard/internal/widget"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

const barWidth = 24

// TextFormatter writes the page as terminal cards followed by a summary
// table. Colors follow fatih/color, so NO_COLOR and --no-color apply.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes the page to w.
func (f *TextFormatter) Format(page *layout.Page, w io.Writer) error {
	var b strings.Builder

	title := page.Title
	if title == "" {
		title = "Dashboard"
	}
	b.WriteString(colorBold.Sprint(title))
	if page.Period != "" {
		fmt.Fprintf(&b, "  (%s)", page.Period)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", colorFaint.Sprintf("generated %s, %d widgets", page.GeneratedAt.UTC().Format(timeLayout), len(page.Tiles())))

	if len(page.Rows) == 0 {
		b.WriteString("\nNo widgets to show.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, row := range page.Rows {
		fmt.Fprintf(&b, "\n%s\n", colorFaint.Sprintf("── row %d ──", i+1))
		for _, tile := range row {
			writeTextCard(&b, tile.Widget)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write text: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", colorBold.Sprint("Summary")); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	tbl := NewTable(
		Column{Header: "Metric"},
		Column{Header: "Chart"},
		Column{Header: "Value", Align: AlignRight},
		Column{Header: "Target", Align: AlignRight},
		Column{Header: "Change", Align: AlignRight},
		Column{Header: "Status", Color: colorStatus},
	)
	for _, tile := range page.Tiles() {
		c := tile.Widget.Header()
		tbl.AddRow(tile.Metric, string(tile.Widget.Kind()), orDash(c.Display), orDash(c.TargetDisplay),
			orDash(c.DeltaDisplay), status(tile.Widget))
	}
	return tbl.Render(w)
}

func writeTextCard(b *strings.Builder, wg widget.Widget) {
	c := wg.Header()
	heading := c.Title
	if c.Icon != "" {
		heading = c.Icon + " " + heading
	}
	b.WriteString("\n")
	b.WriteString(colorBold.Sprint(heading))
	if c.DeltaDisplay != "" {
		b.WriteString("  " + colorDelta(c.Delta, arrow(c.Delta)+" "+c.DeltaDisplay))
	}
	b.WriteString("\n")

	if _, isErr := wg.(*widget.Placeholder); !isErr {
		value := c.Display
		if c.TargetDisplay != "" {
			value += " of " + c.TargetDisplay
		}
		fmt.Fprintf(b, "   %s\n", value)
	}

	switch v := wg.(type) {
	case *widget.ProgressBar:
		if v.HasTarget {
			fmt.Fprintf(b, "   %s %s\n", colorBlue.Sprint(bar(v.Fill/100, barWidth)), v.Label)
		}
	case *widget.Gauge:
		fmt.Fprintf(b, "   %s %s\n", terminalColor(v.Color).Sprint(bar(v.Fill, barWidth)),
			colorFaint.Sprintf("%s-%s", humanize.Ftoa(v.Min), humanize.Ftoa(v.Max)))
	case *widget.Series:
		fmt.Fprintf(b, "   %s  %s\n", terminalColor(v.Colors[0]).Sprint(sparkline(v.Points, v.Min, v.Max)),
			colorFaint.Sprintf("%s..%s", v.Labels[0], v.Labels[len(v.Labels)-1]))
		if v.Style == widget.KindBarSeries {
			for i, p := range v.Points {
				frac := 0.0
				if v.Max > 0 {
					frac = p / v.Max
				}
				fmt.Fprintf(b, "   %-8s %s %s\n", v.Labels[i],
					terminalColor(v.Colors[i%len(v.Colors)]).Sprint(bar(frac, barWidth/2)), humanize.Ftoa(p))
			}
		}
	case *widget.Funnel:
		for _, s := range v.Stages {
			fmt.Fprintf(b, "   %-16s %s %s\n", s.Name, terminalColor(s.Color).Sprint(bar(s.Share, barWidth)), humanize.Ftoa(s.Count))
		}
		for _, warn := range v.Warnings {
			fmt.Fprintf(b, "   %s\n", colorYellow.Sprint("! "+warn))
		}
	case *widget.StarRating:
		fmt.Fprintf(b, "   %s %s\n", colorYellow.Sprint(stars(v.Filled, v.Empty)), detail(v))
	case *widget.Placeholder:
		fmt.Fprintf(b, "   %s\n", colorRed.Sprint("✖ "+detail(v)))
	}
}
