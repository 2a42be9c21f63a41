// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package metric

import "encoding/json"

// MarshalJSON encodes a scalar as a number, a series as an array, and an
// unset value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set:
		return []byte("null"), nil
	case v.series:
		return json.Marshal(v.points)
	default:
		return json.Marshal(v.scalar)
	}
}

// Summary is the wire form of a record for API and tool consumers: the raw
// fields plus the derived headline, progress, and change.
type Summary struct {
	Name          string   `json:"name"`
	Unit          Unit     `json:"unit"`
	Icon          string   `json:"icon,omitempty"`
	Value         Value    `json:"value"`
	Current       float64  `json:"current"`
	Display       string   `json:"display"`
	Target        *float64 `json:"target,omitempty"`
	TargetDisplay string   `json:"target_display,omitempty"`
	Progress      *float64 `json:"progress,omitempty"`
	ChangePercent *float64 `json:"change_percent,omitempty"`
	Delta         *Delta   `json:"delta,omitempty"`
	LowerIsBetter bool     `json:"lower_is_better,omitempty"`
}

// Summarize derives the wire form of r, formatting currency with
// currencySymbol.
func (r Record) Summarize(currencySymbol string) Summary {
	s := Summary{
		Name:          r.Name,
		Unit:          r.Unit,
		Icon:          r.Icon,
		Value:         r.Value,
		Current:       r.Value.Current(),
		Display:       FormatValue(r.Value.Current(), r.Unit, currencySymbol),
		Target:        r.Target,
		ChangePercent: r.ChangePercent,
		LowerIsBetter: r.LowerIsBetter,
	}
	if r.Target != nil {
		s.TargetDisplay = FormatValue(*r.Target, r.Unit, currencySymbol)
	}
	if f, ok := r.ProgressFraction(); ok {
		s.Progress = &f
	}
	if d, ok := r.Delta(); ok {
		s.Delta = &d
	}
	return s
}
