// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package widget

import "fmt"

// ConfigurationError reports a chart spec that is missing a field the chosen
// kind requires, or a record value the kind cannot display.
type ConfigurationError struct {
	Metric string
	Kind   Kind
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	prefix := ""
	if e.Metric != "" {
		prefix = fmt.Sprintf("metric %q: ", e.Metric)
	}
	return fmt.Sprintf("%s%s chart: %s: %s", prefix, e.Kind, e.Field, e.Reason)
}

// InvalidSeriesError reports a time series whose shape does not match its
// labels, or a scalar where a series is required.
type InvalidSeriesError struct {
	Metric string
	Kind   Kind
	Got    int
	Want   int
	Reason string
}

func (e *InvalidSeriesError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("metric %q: %s chart: %s", e.Metric, e.Kind, e.Reason)
	}
	return fmt.Sprintf("metric %q: %s chart: series has %d points, want %d", e.Metric, e.Kind, e.Got, e.Want)
}

// ErrorClass groups render failures for placeholders and counters.
type ErrorClass string

// Error classes.
const (
	ClassNotFound      ErrorClass = "not_found"
	ClassConfiguration ErrorClass = "configuration"
	ClassInvalidSeries ErrorClass = "invalid_series"
	ClassUnknown       ErrorClass = "unknown"
)
