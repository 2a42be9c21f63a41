// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mars303004/kpiboard/internal/layout"
	"github.com/Mars303004/kpiboard/internal/widget"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Columns < 0 {
		errs = append(errs, fmt.Sprintf("columns: must be non-negative, got %d", cfg.Columns))
	}

	names := make(map[string]bool, len(cfg.Metrics))
	for i, m := range cfg.Metrics {
		prefix := fmt.Sprintf("metrics[%d]", i)
		if m.Name != "" {
			prefix = fmt.Sprintf("metrics[%d] (%s)", i, m.Name)
			if names[m.Name] {
				errs = append(errs, prefix+".name: duplicate metric name")
			}
			names[m.Name] = true
		}
		rec, err := m.Record()
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s.unit: %v", prefix, errors.Unwrap(err)))
			continue
		}
		for _, e := range splitJoined(rec.Validate()) {
			errs = append(errs, fmt.Sprintf("%s: %s", prefix, stripMetricPrefix(e, m.Name)))
		}
	}

	cols := cfg.Columns
	if cols <= 0 {
		cols = layout.DefaultColumns
	}
	taken := make(map[[2]int]string, len(cfg.Layout))
	for i, cc := range cfg.Layout {
		prefix := fmt.Sprintf("layout[%d]", i)
		switch {
		case cc.Metric == "":
			errs = append(errs, prefix+".metric: must not be empty")
		case !names[cc.Metric]:
			errs = append(errs, fmt.Sprintf("%s.metric: unknown metric %q", prefix, cc.Metric))
		}
		if cc.Row < 0 {
			errs = append(errs, fmt.Sprintf("%s.row: must be non-negative, got %d", prefix, cc.Row))
		}
		if cc.Col < 0 || cc.Col >= cols {
			errs = append(errs, fmt.Sprintf("%s.col: must be in [0, %d), got %d", prefix, cols, cc.Col))
		}
		pos := [2]int{cc.Row, cc.Col}
		if other, ok := taken[pos]; ok {
			errs = append(errs, fmt.Sprintf("%s: position (%d, %d) already holds %q", prefix, cc.Row, cc.Col, other))
		} else {
			taken[pos] = cc.Metric
		}

		spec, err := cc.ChartSpec()
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s.%v", prefix, err))
			continue
		}
		if err := spec.Validate(); err != nil {
			var ce *widget.ConfigurationError
			if errors.As(err, &ce) {
				errs = append(errs, fmt.Sprintf("%s.%s: %s", prefix, ce.Field, ce.Reason))
			} else {
				errs = append(errs, fmt.Sprintf("%s: %v", prefix, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// splitJoined flattens an errors.Join tree into its messages.
func splitJoined(err error) []string {
	if err == nil {
		return nil
	}
	if multi, ok := errors.Unwrap(err).(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range multi.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

func stripMetricPrefix(msg, name string) string {
	return strings.TrimPrefix(msg, fmt.Sprintf("metric %q: ", name))
}
