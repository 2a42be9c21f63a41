// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/Mars303004/kpiboard/internal/metric"
)

// Shared color printers.
var (
	colorRed     = color.New(color.FgRed)
	colorYellow  = color.New(color.FgYellow)
	colorGreen   = color.New(color.FgGreen)
	colorBlue    = color.New(color.FgBlue)
	colorMagenta = color.New(color.FgMagenta)
	colorCyan    = color.New(color.FgCyan)
	colorBold    = color.New(color.Bold)
	colorFaint   = color.New(color.Faint)
)

// colorStatus colors ok/WARN/ERROR labels.
func colorStatus(val string) string {
	switch val {
	case "ERROR":
		return colorRed.Sprint(val)
	case "WARN":
		return colorYellow.Sprint(val)
	case "ok":
		return colorGreen.Sprint(val)
	default:
		return val
	}
}

// colorDelta colors a change by whether it is good news for the metric.
func colorDelta(d *metric.Delta, s string) string {
	switch {
	case d == nil || d.Direction == metric.DirectionFlat:
		return s
	case d.Favorable:
		return colorGreen.Sprint(s)
	default:
		return colorRed.Sprint(s)
	}
}

// terminalColor maps a widget color token (a CSS name or #rrggbb) onto the
// closest basic terminal color.
func terminalColor(token string) *color.Color {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "red", "crimson", "darkred":
		return colorRed
	case "orange", "yellow", "gold", "amber":
		return colorYellow
	case "green", "lime", "darkgreen", "teal":
		return colorGreen
	case "blue", "navy", "royalblue":
		return colorBlue
	case "purple", "magenta", "violet", "pink":
		return colorMagenta
	case "cyan", "skyblue", "deepskyblue":
		return colorCyan
	}
	r, g, b, ok := parseHex(token)
	if !ok {
		return colorBlue
	}
	switch {
	case r > 180 && g > 150 && b < 120:
		return colorYellow
	case r >= g && r >= b && r-b > 40:
		if g > 100 && b > 120 {
			return colorMagenta
		}
		return colorRed
	case g >= r && g >= b:
		return colorGreen
	case b >= r && b >= g && r > 90:
		return colorMagenta
	case b >= r && b >= g && g > 150:
		return colorCyan
	default:
		return colorBlue
	}
}

func parseHex(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
