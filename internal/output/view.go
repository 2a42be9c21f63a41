// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Mars303004/kpiboard/internal/metric"
	"github.com/Mars303004/kpiboard/internal/widget"
)

const timeLayout = "2006-01-02 15:04 UTC"

// detail summarises the chart-specific part of a widget in one line.
func detail(w widget.Widget) string {
	switch v := w.(type) {
	case *widget.ProgressBar:
		if !v.HasTarget {
			return "no target"
		}
		return v.Label + " of target"
	case *widget.Gauge:
		return fmt.Sprintf("%s band (%s to %s)", v.Color, humanize.Ftoa(v.Buckets[v.Bucket].Lo), humanize.Ftoa(v.Buckets[v.Bucket].Hi))
	case *widget.Series:
		return fmt.Sprintf("%d points, %s to %s", len(v.Points),
			metric.FormatValue(v.Min, v.Unit, ""), metric.FormatValue(v.Max, v.Unit, ""))
	case *widget.Funnel:
		if len(v.Stages) == 0 {
			return "no stages"
		}
		last := v.Stages[len(v.Stages)-1]
		return fmt.Sprintf("%d stages, %s conversion", len(v.Stages), humanize.Ftoa(math.Round(last.Share*1000)/10)+"%")
	case *widget.StarRating:
		return fmt.Sprintf("%.1f/%d", v.Rating, v.Max)
	case *widget.Placeholder:
		return string(v.Class) + ": " + v.Message
	default:
		return ""
	}
}

// status is a one-word health label for summary tables.
func status(w widget.Widget) string {
	if _, ok := w.(*widget.Placeholder); ok {
		return "ERROR"
	}
	if f, ok := w.(*widget.Funnel); ok && len(f.Warnings) > 0 {
		return "WARN"
	}
	return "ok"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// bar draws a fixed-width horizontal bar for fraction in [0, 1].
func bar(fraction float64, width int) string {
	fraction = math.Max(0, math.Min(1, fraction))
	filled := int(math.Round(fraction * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline maps points onto eight block heights between lo and hi.
func sparkline(points []float64, lo, hi float64) string {
	var b strings.Builder
	for _, p := range points {
		idx := 0
		if hi > lo {
			idx = int(math.Round((p - lo) / (hi - lo) * float64(len(sparkRunes)-1)))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// stars draws filled and empty stars.
func stars(filled, empty int) string {
	return strings.Repeat("★", filled) + strings.Repeat("☆", empty)
}

// arrow returns the glyph for a change direction.
func arrow(d *metric.Delta) string {
	if d == nil {
		return ""
	}
	switch d.Direction {
	case metric.DirectionUp:
		return "▲"
	case metric.DirectionDown:
		return "▼"
	default:
		return "►"
	}
}
