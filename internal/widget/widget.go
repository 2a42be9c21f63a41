// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package widget

import (
	"encoding/json"

	"github.com/Mars303004/kpiboard/internal/metric"
)

// Widget is a rendered, host-independent description of one dashboard card.
// The concrete types are ProgressBar, Gauge, Series, Funnel, StarRating, and
// Placeholder.
type Widget interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Header returns the card chrome shared by every variant.
	Header() Card

	isWidget()
}

// Card is the header every widget carries: title, headline value, target,
// and period-over-period change.
type Card struct {
	Title         string        `json:"title"`
	Metric        string        `json:"metric,omitempty"`
	Icon          string        `json:"icon,omitempty"`
	Unit          metric.Unit   `json:"unit,omitempty"`
	Value         float64       `json:"value"`
	Display       string        `json:"display,omitempty"`
	TargetDisplay string        `json:"target,omitempty"`
	Delta         *metric.Delta `json:"delta,omitempty"`
	DeltaDisplay  string        `json:"delta_display,omitempty"`
}

// ProgressBar shows value against target as a filled bar.
type ProgressBar struct {
	Card
	Fill      float64 `json:"fill"`    // 0..100
	Percent   int     `json:"percent"` // round(fraction*100)
	HasTarget bool    `json:"has_target"`
	Label     string  `json:"label"`
}

// Gauge shows a value as a ring scaled to a range with coloured bands.
type Gauge struct {
	Card
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Fill    float64  `json:"fill"` // 0..1 position within [Min, Max]
	Color   string   `json:"color"`
	Bucket  int      `json:"bucket"`
	Buckets []Bucket `json:"buckets"`
}

// Series plots a time series against category labels as a line or bars.
type Series struct {
	Card
	Style  Kind      `json:"style"`
	Labels []string  `json:"labels"`
	Points []float64 `json:"points"`
	Colors []string  `json:"colors"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
}

// Stage is one step of a funnel.
type Stage struct {
	Name  string  `json:"name"`
	Count float64 `json:"count"`
	Color string  `json:"color"`
	Share float64 `json:"share"` // count relative to the first stage
}

// Funnel shows sequential stage counts. Warnings lists stages that grew
// over the previous stage; the funnel still renders.
type Funnel struct {
	Card
	Stages   []Stage  `json:"stages"`
	Warnings []string `json:"warnings,omitempty"`
}

// StarRating shows a 0-5 score as filled and empty symbols.
type StarRating struct {
	Card
	Rating float64 `json:"rating"`
	Filled int     `json:"filled"`
	Empty  int     `json:"empty"`
	Max    int     `json:"max"`
}

// Placeholder replaces a widget whose render failed, so one malformed
// metric never takes down the rest of the page.
type Placeholder struct {
	Card
	Class   ErrorClass `json:"class"`
	Message string     `json:"message"`
}

// NewPlaceholder builds the inline error card for title.
func NewPlaceholder(title string, class ErrorClass, err error) *Placeholder {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Placeholder{Card: Card{Title: title, Metric: title}, Class: class, Message: msg}
}

func (w *ProgressBar) Kind() Kind { return KindProgressBar }
func (w *Gauge) Kind() Kind       { return KindCircularGauge }
func (w *Series) Kind() Kind      { return w.Style }
func (w *Funnel) Kind() Kind      { return KindFunnel }
func (w *StarRating) Kind() Kind  { return KindStarRating }
func (w *Placeholder) Kind() Kind { return KindPlaceholder }

func (w *ProgressBar) Header() Card { return w.Card }
func (w *Gauge) Header() Card       { return w.Card }
func (w *Series) Header() Card      { return w.Card }
func (w *Funnel) Header() Card      { return w.Card }
func (w *StarRating) Header() Card  { return w.Card }
func (w *Placeholder) Header() Card { return w.Card }

func (*ProgressBar) isWidget() {}
func (*Gauge) isWidget()       {}
func (*Series) isWidget()      {}
func (*Funnel) isWidget()      {}
func (*StarRating) isWidget()  {}
func (*Placeholder) isWidget() {}

// MarshalJSON adds the "kind" discriminator.
func (w *ProgressBar) MarshalJSON() ([]byte, error) {
	type body ProgressBar
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		*body
	}{w.Kind(), (*body)(w)})
}

// MarshalJSON adds the "kind" discriminator.
func (w *Gauge) MarshalJSON() ([]byte, error) {
	type body Gauge
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		*body
	}{w.Kind(), (*body)(w)})
}

// MarshalJSON adds the "kind" discriminator.
func (w *Series) MarshalJSON() ([]byte, error) {
	type body Series
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		*body
	}{w.Kind(), (*body)(w)})
}

// MarshalJSON adds the "kind" discriminator.
func (w *Funnel) MarshalJSON() ([]byte, error) {
	type body Funnel
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		*body
	}{w.Kind(), (*body)(w)})
}

// MarshalJSON adds the "kind" discriminator.
func (w *StarRating) MarshalJSON() ([]byte, error) {
	type body StarRating
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		*body
	}{w.Kind(), (*body)(w)})
}

// MarshalJSON adds the "kind" discriminator.
func (w *Placeholder) MarshalJSON() ([]byte, error) {
	type body Placeholder
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		*body
	}{w.Kind(), (*body)(w)})
}
