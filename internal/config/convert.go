// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/Mars303004/kpiboard/internal/layout"
	"github.com/Mars303004/kpiboard/internal/metric"
	"github.com/Mars303004/kpiboard/internal/widget"
)

// Records converts the metrics section into domain records. Records are not
// validated here; registry.New does that.
func (c *Config) Records() ([]metric.Record, error) {
	out := make([]metric.Record, 0, len(c.Metrics))
	var errs []error
	for i, m := range c.Metrics {
		rec, err := m.Record()
		if err != nil {
			errs = append(errs, fmt.Errorf("metrics[%d]: %w", i, err))
			continue
		}
		out = append(out, rec)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// Record converts one metric entry.
func (m MetricConfig) Record() (metric.Record, error) {
	unit, err := metric.ParseUnit(m.Unit)
	if err != nil {
		return metric.Record{}, fmt.Errorf("metric %q: unit: %w", m.Name, err)
	}
	rec := metric.Record{
		Name:          m.Name,
		Unit:          unit,
		Icon:          m.Icon,
		LowerIsBetter: m.LowerIsBetter,
	}
	switch {
	case m.Value.List:
		rec.Value = metric.Series(m.Value.Points...)
	case len(m.Value.Points) > 0:
		rec.Value = metric.Scalar(m.Value.Points[0])
	}
	if m.Target != nil {
		rec.Target = metric.Float(float64(*m.Target))
	}
	if m.Change != nil {
		rec.ChangePercent = metric.Float(float64(*m.Change))
	}
	return rec, nil
}

// BuildLayout converts the layout section into a layout.Layout.
func (c *Config) BuildLayout() (layout.Layout, error) {
	l := layout.Layout{Title: c.Title, Columns: c.Columns}
	var errs []error
	for i, cc := range c.Layout {
		spec, err := cc.ChartSpec()
		if err != nil {
			errs = append(errs, fmt.Errorf("layout[%d]: %w", i, err))
			continue
		}
		l.Cells = append(l.Cells, layout.Cell{Metric: cc.Metric, Row: cc.Row, Col: cc.Col, Chart: spec})
	}
	if len(errs) > 0 {
		return layout.Layout{}, errors.Join(errs...)
	}
	return l, nil
}

// ChartSpec converts one layout entry's chart settings. Only the kind name
// and the range shape are checked; the rest is left to widget validation.
func (cc CellConfig) ChartSpec() (widget.ChartSpec, error) {
	kind, err := widget.ParseKind(cc.Kind)
	if err != nil {
		return widget.ChartSpec{}, fmt.Errorf("kind: %w", err)
	}
	spec := widget.ChartSpec{
		Kind:       kind,
		Colors:     cc.Colors,
		Thresholds: cc.Thresholds,
		Categories: cc.Categories,
		Title:      cc.Title,
	}
	switch len(cc.Range) {
	case 0:
	case 2:
		spec.Range = &widget.Range{Min: cc.Range[0], Max: cc.Range[1]}
	default:
		return widget.ChartSpec{}, fmt.Errorf("range: must be [min, max], got %d values", len(cc.Range))
	}
	return spec, nil
}
