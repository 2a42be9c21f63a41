// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/Mars303004/kpiboard/internal/layout"
	"github.com/Mars303004/kpiboard/internal/widget"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the page as one Markdown table per grid row.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the page as a Markdown document to w.
//
// The output includes:
//   - A title heading with the period
//   - A summary line with widget and error counts
//   - One table per row of the grid
//   - An error list when any widget failed
func (m *MarkdownFormatter) Format(page *layout.Page, w io.Writer) error {
	var b strings.Builder

	title := page.Title
	if title == "" {
		title = "Dashboard"
	}
	if page.Period != "" {
		title += " (" + page.Period + ")"
	}
	fmt.Fprintf(&b, "# %s\n\n", mdEscape(title))

	errs := page.Errors()
	fmt.Fprintf(&b, "**Widgets:** %d | **Errors:** %d | **Generated:** %s\n\n",
		len(page.Tiles()), len(errs), page.GeneratedAt.UTC().Format(timeLayout))

	for i, row := range page.Rows {
		fmt.Fprintf(&b, "## Row %d\n\n", i+1)
		b.WriteString("| Metric | Chart | Value | Target | Change | Detail |\n")
		b.WriteString("|--------|-------|------:|-------:|-------:|--------|\n")
		for _, tile := range row {
			c := tile.Widget.Header()
			change := orDash(c.DeltaDisplay)
			if c.Delta != nil {
				change = arrow(c.Delta) + " " + change
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				mdEscape(c.Title), tile.Widget.Kind(), mdEscape(orDash(c.Display)),
				mdEscape(orDash(c.TargetDisplay)), change, mdEscape(mdDetail(tile.Widget)))
		}
		b.WriteString("\n")
	}

	if len(errs) > 0 {
		b.WriteString("## Errors\n\n")
		for _, t := range errs {
			fmt.Fprintf(&b, "- **%s** (row %d, col %d): %s\n", mdEscape(t.Metric), t.Row, t.Col, mdEscape(t.Err.Error()))
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// mdDetail extends detail with inline glyphs where Markdown can show them.
func mdDetail(wg widget.Widget) string {
	switch v := wg.(type) {
	case *widget.StarRating:
		return stars(v.Filled, v.Empty) + " " + detail(v)
	case *widget.Series:
		return sparkline(v.Points, v.Min, v.Max) + " " + detail(v)
	case *widget.Funnel:
		names := make([]string, len(v.Stages))
		for i, s := range v.Stages {
			names[i] = fmt.Sprintf("%s %g", s.Name, s.Count)
		}
		return strings.Join(names, " → ")
	default:
		return detail(wg)
	}
}

// mdEscape escapes characters that would break a table cell.
func mdEscape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}
