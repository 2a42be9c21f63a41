// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

// Package registry holds the metric records for one render pass. A Registry
// is built once from a Source and never mutated afterwards.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Mars303004/kpiboard/internal/metric"
)

// NotFoundError reports a lookup for a metric name the registry does not hold.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("metric %q not found", e.Name)
}

// Registry is an immutable, ordered mapping from metric name to record.
type Registry struct {
	byName map[string]metric.Record
	order  []string
}

// New validates records and builds a Registry preserving their order.
// Every invalid record and duplicate name is reported in one error.
func New(records []metric.Record) (*Registry, error) {
	r := &Registry{byName: make(map[string]metric.Record, len(records))}
	var errs []error
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, exists := r.byName[rec.Name]; exists {
			errs = append(errs, fmt.Errorf("metric %q: duplicate name", rec.Name))
			continue
		}
		r.byName[rec.Name] = copyRecord(rec)
		r.order = append(r.order, rec.Name)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid metrics: %w", errors.Join(errs...))
	}
	return r, nil
}

// All returns every record in registration order.
func (r *Registry) All() []metric.Record {
	out := make([]metric.Record, len(r.order))
	for i, name := range r.order {
		out[i] = copyRecord(r.byName[name])
	}
	return out
}

// Get returns the record named name, or a *NotFoundError.
func (r *Registry) Get(name string) (metric.Record, error) {
	rec, ok := r.byName[name]
	if !ok {
		return metric.Record{}, &NotFoundError{Name: name}
	}
	return copyRecord(rec), nil
}

// Lookup is like Get but matches names case-insensitively when there is no
// exact match. It is meant for user-typed names (CLI, MCP, HTTP).
func (r *Registry) Lookup(name string) (metric.Record, error) {
	if rec, err := r.Get(name); err == nil {
		return rec, nil
	}
	for _, n := range r.order {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return copyRecord(r.byName[n]), nil
		}
	}
	return metric.Record{}, &NotFoundError{Name: name}
}

// Names returns metric names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int { return len(r.order) }

// Source supplies metric records. Fetching from a source is the only
// blocking step of a render pass.
type Source interface {
	Metrics(ctx context.Context) ([]metric.Record, error)
}

// Load fetches records from src and builds a Registry. The result is all or
// nothing: a source error or any invalid record fails the whole load.
func Load(ctx context.Context, src Source) (*Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := src.Metrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("load metrics: %w", err)
	}
	return New(records)
}

// StaticSource serves a fixed set of records, typically from configuration.
type StaticSource struct {
	records []metric.Record
}

// NewStaticSource copies records into a StaticSource.
func NewStaticSource(records []metric.Record) *StaticSource {
	cp := make([]metric.Record, len(records))
	for i, rec := range records {
		cp[i] = copyRecord(rec)
	}
	return &StaticSource{records: cp}
}

// Metrics returns a fresh copy of the configured records.
func (s *StaticSource) Metrics(ctx context.Context) ([]metric.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]metric.Record, len(s.records))
	for i, rec := range s.records {
		out[i] = copyRecord(rec)
	}
	return out, nil
}

// copyRecord detaches the optional fields so callers cannot mutate a
// registry's records through shared pointers. Value is already immutable.
func copyRecord(rec metric.Record) metric.Record {
	if rec.Target != nil {
		rec.Target = metric.Float(*rec.Target)
	}
	if rec.ChangePercent != nil {
		rec.ChangePercent = metric.Float(*rec.ChangePercent)
	}
	return rec
}
