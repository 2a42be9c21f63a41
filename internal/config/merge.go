// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package config

// Merge layers a dashboard file over global defaults. Dashboard values take
// precedence; zero-value dashboard fields fall through to the global config.
// Metrics and layout are taken as whole sections, never merged entry by entry.
func Merge(global, local *Config) *Config {
	if global == nil {
		global = &Config{}
	}
	result := *local

	if result.Title == "" {
		result.Title = global.Title
	}
	if result.Period == "" {
		result.Period = global.Period
	}
	if result.Columns == 0 {
		result.Columns = global.Columns
	}
	if result.CurrencySymbol == "" {
		result.CurrencySymbol = global.CurrencySymbol
	}
	if len(result.Metrics) == 0 {
		result.Metrics = global.Metrics
	}
	if len(result.Layout) == 0 {
		result.Layout = global.Layout
	}
	return &result
}
