// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package widget

import (
	"fmt"
	"math"

	"github.com/Mars303004/kpiboard/internal/metric"
)

// Renderer holds display options. The zero value is ready to use.
type Renderer struct {
	// CurrencySymbol prefixes currency values (default metric.DefaultCurrencySymbol).
	CurrencySymbol string
}

// Render renders rec with the default Renderer.
func Render(rec metric.Record, spec ChartSpec) (Widget, error) {
	return Renderer{}.Render(rec, spec)
}

// Render produces the widget for rec drawn as spec. Missing spec fields the
// kind requires fail with *ConfigurationError; malformed series fail with
// *InvalidSeriesError. Nothing is defaulted silently.
func (r Renderer) Render(rec metric.Record, spec ChartSpec) (Widget, error) {
	switch spec.Kind {
	case KindProgressBar:
		return r.progressBar(rec, spec), nil
	case KindCircularGauge:
		return r.gauge(rec, spec)
	case KindLineSeries, KindBarSeries:
		return r.series(rec, spec)
	case KindFunnel:
		return r.funnel(rec, spec)
	case KindStarRating:
		return r.stars(rec, spec)
	default:
		return nil, &ConfigurationError{Metric: rec.Name, Kind: spec.Kind, Field: "kind", Reason: "unknown chart kind"}
	}
}

func (r Renderer) card(rec metric.Record, spec ChartSpec) Card {
	title := spec.Title
	if title == "" {
		title = rec.Name
	}
	v := rec.Value.Current()
	c := Card{
		Title:   title,
		Metric:  rec.Name,
		Icon:    rec.Icon,
		Unit:    rec.Unit,
		Value:   v,
		Display: metric.FormatValue(v, rec.Unit, r.CurrencySymbol),
	}
	if rec.Target != nil {
		c.TargetDisplay = metric.FormatValue(*rec.Target, rec.Unit, r.CurrencySymbol)
	}
	if d, ok := rec.Delta(); ok {
		c.Delta = &d
		c.DeltaDisplay = metric.FormatChange(d.Percent)
	}
	return c
}

func (r Renderer) progressBar(rec metric.Record, spec ChartSpec) *ProgressBar {
	w := &ProgressBar{Card: r.card(rec, spec)}
	if f, ok := rec.ProgressFraction(); ok {
		w.HasTarget = true
		w.Fill = f * 100
		w.Percent = int(math.Round(f * 100))
		w.Label = fmt.Sprintf("%d%%", w.Percent)
	}
	return w
}

func (r Renderer) gauge(rec metric.Record, spec ChartSpec) (*Gauge, error) {
	buckets, err := spec.Buckets()
	if err != nil {
		return nil, withMetric(err, rec.Name)
	}
	rng := *spec.Range
	v := rec.Value.Current()
	if !rng.Contains(v) {
		return nil, &ConfigurationError{Metric: rec.Name, Kind: spec.Kind, Field: "range",
			Reason: fmt.Sprintf("value %g is outside range [%g, %g]", v, rng.Min, rng.Max)}
	}
	idx := matchBucket(buckets, v)
	return &Gauge{
		Card:    r.card(rec, spec),
		Min:     rng.Min,
		Max:     rng.Max,
		Fill:    (v - rng.Min) / (rng.Max - rng.Min),
		Color:   buckets[idx].Color,
		Bucket:  idx,
		Buckets: buckets,
	}, nil
}

func (r Renderer) series(rec metric.Record, spec ChartSpec) (*Series, error) {
	labels := spec.seriesLabels()
	if !rec.Value.IsSeries() {
		return nil, &InvalidSeriesError{Metric: rec.Name, Kind: spec.Kind, Got: rec.Value.Len(), Want: len(labels),
			Reason: "value is not a time series"}
	}
	points := rec.Value.Points()
	if len(points) != len(labels) {
		return nil, &InvalidSeriesError{Metric: rec.Name, Kind: spec.Kind, Got: len(points), Want: len(labels)}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	return &Series{
		Card:   r.card(rec, spec),
		Style:  spec.Kind,
		Labels: append([]string(nil), labels...),
		Points: points,
		Colors: palette(spec.Colors, DefaultSeriesColors),
		Min:    lo,
		Max:    hi,
	}, nil
}

func (r Renderer) funnel(rec metric.Record, spec ChartSpec) (*Funnel, error) {
	if len(spec.Categories) == 0 {
		return nil, &ConfigurationError{Metric: rec.Name, Kind: spec.Kind, Field: "categories", Reason: "funnel stages need names"}
	}
	if !rec.Value.IsSeries() {
		return nil, &InvalidSeriesError{Metric: rec.Name, Kind: spec.Kind, Got: rec.Value.Len(), Want: len(spec.Categories),
			Reason: "value is not a sequence of stage counts"}
	}
	counts := rec.Value.Points()
	if len(counts) != len(spec.Categories) {
		return nil, &InvalidSeriesError{Metric: rec.Name, Kind: spec.Kind, Got: len(counts), Want: len(spec.Categories)}
	}

	colors := palette(spec.Colors, DefaultFunnelColors)
	w := &Funnel{Card: r.card(rec, spec)}
	// The headline of a funnel is its final stage, not the mean of all stages.
	last := counts[len(counts)-1]
	w.Value = last
	w.Display = metric.FormatValue(last, rec.Unit, r.CurrencySymbol)

	for i, c := range counts {
		if c < 0 {
			return nil, &ConfigurationError{Metric: rec.Name, Kind: spec.Kind, Field: "value",
				Reason: fmt.Sprintf("stage %q has negative count %g", spec.Categories[i], c)}
		}
		share := 0.0
		if counts[0] > 0 {
			share = c / counts[0]
		}
		w.Stages = append(w.Stages, Stage{
			Name:  spec.Categories[i],
			Count: c,
			Color: colors[i%len(colors)],
			Share: share,
		})
		if i > 0 && c > counts[i-1] {
			w.Warnings = append(w.Warnings, fmt.Sprintf("stage %q (%g) exceeds previous stage %q (%g)",
				spec.Categories[i], c, spec.Categories[i-1], counts[i-1]))
		}
	}
	return w, nil
}

func (r Renderer) stars(rec metric.Record, spec ChartSpec) (*StarRating, error) {
	v := rec.Value.Current()
	if v < 0 || v > MaxStars {
		return nil, &ConfigurationError{Metric: rec.Name, Kind: spec.Kind, Field: "value",
			Reason: fmt.Sprintf("rating %g is outside 0-%d", v, MaxStars)}
	}
	filled := int(math.Floor(v))
	return &StarRating{
		Card:   r.card(rec, spec),
		Rating: v,
		Filled: filled,
		Empty:  MaxStars - filled,
		Max:    MaxStars,
	}, nil
}

// withMetric stamps the metric name onto spec-level configuration errors.
func withMetric(err error, name string) error {
	if ce, ok := err.(*ConfigurationError); ok {
		cp := *ce
		cp.Metric = name
		return &cp
	}
	return err
}
