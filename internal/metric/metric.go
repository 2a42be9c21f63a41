// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

// Package metric defines the KPI snapshot types shared by the registry,
// the widget renderer, and every output host.
package metric

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Unit describes how a metric value is measured and displayed.
type Unit string

// Supported units.
const (
	UnitPercent  Unit = "percent"
	UnitCurrency Unit = "currency"
	UnitCount    Unit = "count"
	UnitScore    Unit = "score"
	UnitRatio    Unit = "ratio"
)

// Units lists every supported unit in display order.
var Units = []Unit{UnitPercent, UnitCurrency, UnitCount, UnitScore, UnitRatio}

// ParseUnit converts a configuration string into a Unit.
// The empty string maps to UnitPercent, the most common KPI unit.
func ParseUnit(s string) (Unit, error) {
	if s == "" {
		return UnitPercent, nil
	}
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("unknown unit %q (must be one of: %s)", s, unitNames())
	}
	return u, nil
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

func unitNames() string {
	names := make([]string, len(Units))
	for i, u := range Units {
		names[i] = string(u)
	}
	return strings.Join(names, ", ")
}

// Value is either a single number or an ordered, non-empty series of numbers
// sharing the metric's unit (e.g. twelve monthly values).
type Value struct {
	scalar float64
	points []float64
	series bool
	set    bool
}

// Scalar returns a single-number value.
func Scalar(v float64) Value {
	return Value{scalar: v, set: true}
}

// Series returns a time-series value. The slice is copied.
func Series(points ...float64) Value {
	cp := make([]float64, len(points))
	copy(cp, points)
	return Value{points: cp, series: true, set: true}
}

// IsZero reports whether no value was provided.
func (v Value) IsZero() bool { return !v.set }

// IsSeries reports whether v holds a series.
func (v Value) IsSeries() bool { return v.series }

// Len returns the series length, or 1 for a scalar and 0 for an unset value.
func (v Value) Len() int {
	switch {
	case !v.set:
		return 0
	case v.series:
		return len(v.points)
	default:
		return 1
	}
}

// Points returns a copy of the series, or nil for scalars.
func (v Value) Points() []float64 {
	if !v.series {
		return nil
	}
	cp := make([]float64, len(v.points))
	copy(cp, v.points)
	return cp
}

// Current returns the headline number: the scalar itself, or the mean of a
// series. An empty series yields 0.
func (v Value) Current() float64 {
	if !v.series {
		return v.scalar
	}
	if len(v.points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range v.points {
		sum += p
	}
	return sum / float64(len(v.points))
}

// Record is one KPI's current snapshot.
type Record struct {
	Name          string
	Value         Value
	Target        *float64 // nil when no target is defined
	ChangePercent *float64 // nil when there is no change data
	Unit          Unit
	Icon          string

	// LowerIsBetter flips the meaning of a positive change (expense, churn,
	// defect rate, turnover).
	LowerIsBetter bool
}

// Float returns a pointer to v, for populating optional fields.
func Float(v float64) *float64 { return &v }

// ProgressFraction returns value/target clamped to [0, 1]. The second result
// is false when no target is defined or the target is zero.
func (r Record) ProgressFraction() (float64, bool) {
	if r.Target == nil || *r.Target == 0 {
		return 0, false
	}
	f := r.Value.Current() / *r.Target
	switch {
	case math.IsNaN(f), f < 0:
		return 0, true
	case f > 1:
		return 1, true
	default:
		return f, true
	}
}

// Validate checks the record's structural constraints and reports every
// problem found, joined into one error.
func (r Record) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, errors.New("name: must not be empty"))
	}
	if !r.Unit.Valid() {
		errs = append(errs, fmt.Errorf("unit: unknown unit %q", r.Unit))
	}
	switch {
	case r.Value.IsZero():
		errs = append(errs, errors.New("value: must be present"))
	case r.Value.IsSeries():
		if len(r.Value.points) == 0 {
			errs = append(errs, errors.New("value: series must not be empty"))
		}
		for i, p := range r.Value.points {
			if !finite(p) {
				errs = append(errs, fmt.Errorf("value[%d]: must be a finite number", i))
			}
		}
	case !finite(r.Value.scalar):
		errs = append(errs, errors.New("value: must be a finite number"))
	}
	if r.Target != nil {
		if !finite(*r.Target) || *r.Target < 0 {
			errs = append(errs, fmt.Errorf("target: must be non-negative, got %g", *r.Target))
		}
	}
	if r.ChangePercent != nil && !finite(*r.ChangePercent) {
		errs = append(errs, errors.New("change: must be a finite number"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("metric %q: %w", r.Name, errors.Join(errs...))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Direction is the sign of a period-over-period change.
type Direction string

// Change directions.
const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Delta summarises ChangePercent for display.
type Delta struct {
	Percent   float64   `json:"percent"`
	Direction Direction `json:"direction"`
	// Favorable is true when the move is good news for this metric.
	Favorable bool `json:"favorable"`
}

// Delta returns the change summary, or false when no change data exists.
func (r Record) Delta() (Delta, bool) {
	if r.ChangePercent == nil {
		return Delta{}, false
	}
	c := *r.ChangePercent
	d := Delta{Percent: c, Direction: DirectionFlat, Favorable: true}
	switch {
	case c > 0:
		d.Direction = DirectionUp
		d.Favorable = !r.LowerIsBetter
	case c < 0:
		d.Direction = DirectionDown
		d.Favorable = r.LowerIsBetter
	}
	return d, true
}
