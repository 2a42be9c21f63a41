// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

// Package widget turns a metric record plus a chart spec into a typed,
// host-independent widget description. Rendering is pure: the same inputs
// always yield the same widget and nothing is retained between calls.
package widget

import (
	"fmt"
	"strings"
)

// Kind selects how a record is visualised.
type Kind string

// Chart kinds accepted in a ChartSpec.
const (
	KindProgressBar   Kind = "progressBar"
	KindCircularGauge Kind = "circularGauge"
	KindLineSeries    Kind = "lineSeries"
	KindBarSeries     Kind = "barSeries"
	KindFunnel        Kind = "funnel"
	KindStarRating    Kind = "starRating"
)

// KindPlaceholder tags the inline error card. It is never valid in a ChartSpec.
const KindPlaceholder Kind = "placeholder"

// Kinds lists every chart kind accepted in a ChartSpec.
var Kinds = []Kind{
	KindProgressBar, KindCircularGauge, KindLineSeries,
	KindBarSeries, KindFunnel, KindStarRating,
}

// ParseKind converts a configuration string into a Kind. Matching is
// case-insensitive and accepts snake_case and kebab-case spellings.
func ParseKind(s string) (Kind, error) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
	for _, k := range Kinds {
		if strings.ToLower(string(k)) == norm {
			return k, nil
		}
	}
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return "", fmt.Errorf("unknown chart kind %q (must be one of: %s)", s, strings.Join(names, ", "))
}

// MaxStars is the fixed scale of a star rating.
const MaxStars = 5

// Months are the default category labels for line and bar series.
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Default palettes.
var (
	DefaultAccent       = "#0d6efd"
	DefaultSeriesColors = []string{"#0d6efd", "#6f42c1", "#20c997", "#fd7e14", "#e83e8c", "#17a2b8", "#6c757d", "#28a745"}
	DefaultFunnelColors = []string{"#FF6B6B", "#FFD166", "#1E8449", "#00BFFF", "#8E44AD"}
)

// Range is a closed numeric axis bound.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ChartSpec describes how one record is visualised. It is paired with a
// record by the layout step, so the same record can be drawn differently
// in different cells.
type ChartSpec struct {
	Kind Kind

	// Colors holds one token per gauge bucket, per bar category (cycled),
	// or per funnel stage (cycled).
	Colors []string

	// Thresholds are the inner gauge bucket boundaries: len(Colors)-1
	// strictly increasing values strictly inside Range.
	Thresholds []float64

	// Range bounds the gauge axis. Required for KindCircularGauge.
	Range *Range

	// Categories labels series points and names funnel stages. Series
	// default to Months.
	Categories []string

	// Title overrides the record name on the card.
	Title string
}

// Bucket is one coloured band of a gauge. Every bucket is half-open
// [Lo, Hi) except the last, which also contains Hi.
type Bucket struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Color string  `json:"color"`
}

// Buckets derives contiguous, non-overlapping gauge bands from Range,
// Thresholds, and Colors. With no colours a single default band spans the
// whole range.
func (s ChartSpec) Buckets() ([]Bucket, error) {
	if s.Range == nil {
		return nil, &ConfigurationError{Kind: s.Kind, Field: "range", Reason: "required for gauge charts"}
	}
	rng := *s.Range
	if !(rng.Min < rng.Max) {
		return nil, &ConfigurationError{Kind: s.Kind, Field: "range",
			Reason: fmt.Sprintf("min (%g) must be less than max (%g)", rng.Min, rng.Max)}
	}
	if len(s.Colors) == 0 {
		if len(s.Thresholds) > 0 {
			return nil, &ConfigurationError{Kind: s.Kind, Field: "thresholds", Reason: "thresholds given without colors"}
		}
		return []Bucket{{Lo: rng.Min, Hi: rng.Max, Color: DefaultAccent}}, nil
	}
	if len(s.Thresholds) != len(s.Colors)-1 {
		return nil, &ConfigurationError{Kind: s.Kind, Field: "thresholds",
			Reason: fmt.Sprintf("need %d thresholds for %d colors, got %d", len(s.Colors)-1, len(s.Colors), len(s.Thresholds))}
	}

	bounds := make([]float64, 0, len(s.Colors)+1)
	bounds = append(bounds, rng.Min)
	for i, t := range s.Thresholds {
		if t <= rng.Min || t >= rng.Max {
			return nil, &ConfigurationError{Kind: s.Kind, Field: "thresholds",
				Reason: fmt.Sprintf("threshold %g is outside range (%g, %g)", t, rng.Min, rng.Max)}
		}
		if i > 0 && t <= s.Thresholds[i-1] {
			return nil, &ConfigurationError{Kind: s.Kind, Field: "thresholds",
				Reason: fmt.Sprintf("thresholds must be strictly increasing (%g after %g)", t, s.Thresholds[i-1])}
		}
		bounds = append(bounds, t)
	}
	bounds = append(bounds, rng.Max)

	buckets := make([]Bucket, len(s.Colors))
	for i, c := range s.Colors {
		buckets[i] = Bucket{Lo: bounds[i], Hi: bounds[i+1], Color: c}
	}
	return buckets, nil
}

// matchBucket returns the index of the first bucket containing v, or -1.
func matchBucket(buckets []Bucket, v float64) int {
	last := len(buckets) - 1
	for i, b := range buckets {
		if v >= b.Lo && (v < b.Hi || (i == last && v <= b.Hi)) {
			return i
		}
	}
	return -1
}

// Validate checks the parts of a ChartSpec that do not depend on a record.
// It is used by configuration validation so problems surface before any
// render pass.
func (s ChartSpec) Validate() error {
	switch s.Kind {
	case KindCircularGauge:
		_, err := s.Buckets()
		return err
	case KindFunnel:
		if len(s.Categories) == 0 {
			return &ConfigurationError{Kind: s.Kind, Field: "categories", Reason: "funnel stages need names"}
		}
	case KindProgressBar, KindLineSeries, KindBarSeries, KindStarRating:
	default:
		return &ConfigurationError{Kind: s.Kind, Field: "kind", Reason: "unknown chart kind"}
	}
	return nil
}

func (s ChartSpec) seriesLabels() []string {
	if len(s.Categories) > 0 {
		return s.Categories
	}
	return Months
}

func palette(colors, fallback []string) []string {
	if len(colors) > 0 {
		return colors
	}
	return fallback
}
