// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

// Package config handles kpiboard dashboard files: the metric records to
// show and the layout that places them.
package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// File names searched by LoadDir, in order.
const (
	FileName     = "kpiboard.yaml"
	TOMLFileName = "kpiboard.toml"
)

// Config represents the contents of a dashboard file.
type Config struct {
	Title          string         `yaml:"title,omitempty" toml:"title,omitempty"`
	Period         string         `yaml:"period,omitempty" toml:"period,omitempty"`
	Columns        int            `yaml:"columns,omitempty" toml:"columns,omitempty"`
	CurrencySymbol string         `yaml:"currency_symbol,omitempty" toml:"currency_symbol,omitempty"`
	Metrics        []MetricConfig `yaml:"metrics,omitempty" toml:"metrics,omitempty"`
	Layout         []CellConfig   `yaml:"layout,omitempty" toml:"layout,omitempty"`
}

// MetricConfig is one metric record in the file.
type MetricConfig struct {
	Name          string  `yaml:"name" toml:"name"`
	Value         Value   `yaml:"value,omitempty" toml:"value,omitempty"`
	Target        *Number `yaml:"target,omitempty" toml:"target,omitempty"`
	Change        *Number `yaml:"change,omitempty" toml:"change,omitempty"`
	Unit          string  `yaml:"unit,omitempty" toml:"unit,omitempty"`
	Icon          string  `yaml:"icon,omitempty" toml:"icon,omitempty"`
	LowerIsBetter bool    `yaml:"lower_is_better,omitempty" toml:"lower_is_better,omitempty"`
}

// CellConfig places one metric on the grid.
type CellConfig struct {
	Metric     string    `yaml:"metric" toml:"metric"`
	Kind       string    `yaml:"kind" toml:"kind"`
	Row        int       `yaml:"row" toml:"row"`
	Col        int       `yaml:"col" toml:"col"`
	Title      string    `yaml:"title,omitempty" toml:"title,omitempty"`
	Colors     []string  `yaml:"colors,omitempty,flow" toml:"colors,omitempty"`
	Thresholds []float64 `yaml:"thresholds,omitempty,flow" toml:"thresholds,omitempty"`
	Range      []float64 `yaml:"range,omitempty,flow" toml:"range,omitempty"`
	Categories []string  `yaml:"categories,omitempty,flow" toml:"categories,omitempty"`
}

// Number is a float64 that encodes without exponent notation, so large
// currency amounts stay readable in generated files.
type Number float64

// Num returns a pointer to n as a Number.
func Num(n float64) *Number {
	v := Number(n)
	return &v
}

// MarshalYAML implements yaml.Marshaler.
func (n Number) MarshalYAML() (any, error) {
	return numberNode(float64(n)), nil
}

// UnmarshalTOML implements toml.Unmarshaler; TOML integers are accepted.
func (n *Number) UnmarshalTOML(data any) error {
	f, err := tomlFloat(data)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Value is a metric value: either a single number or a list of numbers.
type Value struct {
	Points []float64
	List   bool
}

// Scalar returns a single-number Value.
func Scalar(v float64) Value { return Value{Points: []float64{v}} }

// List returns a list Value.
func List(points ...float64) Value { return Value{Points: points, List: true} }

// IsZero reports whether no value was given. yaml.v3 uses it for omitempty.
func (v Value) IsZero() bool { return !v.List && len(v.Points) == 0 }

// UnmarshalYAML accepts a number or a sequence of numbers.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch {
	case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		*v = Value{}
	case node.Kind == yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: value must be a number or a list of numbers", node.Line)
		}
		*v = Scalar(f)
	case node.Kind == yaml.SequenceNode:
		var pts []float64
		if err := node.Decode(&pts); err != nil {
			return fmt.Errorf("line %d: value must be a number or a list of numbers", node.Line)
		}
		*v = List(pts...)
	default:
		return fmt.Errorf("line %d: value must be a number or a list of numbers", node.Line)
	}
	return nil
}

// MarshalYAML writes lists in flow style.
func (v Value) MarshalYAML() (any, error) {
	if !v.List {
		if len(v.Points) == 0 {
			return nil, nil
		}
		return numberNode(v.Points[0]), nil
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, p := range v.Points {
		seq.Content = append(seq.Content, numberNode(p))
	}
	return seq, nil
}

// UnmarshalTOML accepts a number or an array of numbers.
func (v *Value) UnmarshalTOML(data any) error {
	if arr, ok := data.([]any); ok {
		pts := make([]float64, len(arr))
		for i, item := range arr {
			f, err := tomlFloat(item)
			if err != nil {
				return fmt.Errorf("value[%d]: %w", i, err)
			}
			pts[i] = f
		}
		*v = List(pts...)
		return nil
	}
	f, err := tomlFloat(data)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	*v = Scalar(f)
	return nil
}

func numberNode(f float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(f, 'f', -1, 64)}
}

func tomlFloat(data any) (float64, error) {
	switch n := data.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", data)
	}
}
