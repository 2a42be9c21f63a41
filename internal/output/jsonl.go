// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Mars303004/kpiboard/internal/layout"
)

// tileRecord is the JSON structure written for each tile in JSONL output.
// It flattens the card header so line-oriented tools (jq, log shippers) can
// filter on it without walking the page tree.
type tileRecord struct {
	PageID  string  `json:"page_id"`
	Period  string  `json:"period,omitempty"`
	Row     int     `json:"row"`
	Col     int     `json:"col"`
	Metric  string  `json:"metric"`
	Kind    string  `json:"kind"`
	Value   float64 `json:"value"`
	Display string  `json:"display,omitempty"`
	Target  string  `json:"target,omitempty"`
	Change  string  `json:"change,omitempty"`
	Status  string  `json:"status"`
	Class   string  `json:"class,omitempty"`
	Error   string  `json:"error,omitempty"`
}

func init() {
	RegisterFormatter(NewJSONLFormatter())
}

// JSONLFormatter writes one JSON object per tile, in row-major order.
type JSONLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*JSONLFormatter)(nil)

// NewJSONLFormatter returns a new JSONLFormatter.
func NewJSONLFormatter() *JSONLFormatter {
	return &JSONLFormatter{}
}

// Name returns the format name.
func (f *JSONLFormatter) Name() string {
	return "jsonl"
}

// Format writes each tile as a single-line JSON object to w.
func (f *JSONLFormatter) Format(page *layout.Page, w io.Writer) error {
	for i, tile := range page.Tiles() {
		data, err := json.Marshal(toTileRecord(page, tile))
		if err != nil {
			return fmt.Errorf("marshal tile %d: %w", i, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write tile %d: %w", i, err)
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return fmt.Errorf("write newline %d: %w", i, err)
		}
	}
	return nil
}

func toTileRecord(page *layout.Page, tile layout.Tile) tileRecord {
	c := tile.Widget.Header()
	rec := tileRecord{
		PageID:  page.ID,
		Period:  page.Period,
		Row:     tile.Row,
		Col:     tile.Col,
		Metric:  tile.Metric,
		Kind:    string(tile.Widget.Kind()),
		Value:   c.Value,
		Display: c.Display,
		Target:  c.TargetDisplay,
		Change:  c.DeltaDisplay,
		Status:  status(tile.Widget),
	}
	if tile.Err != nil {
		rec.Class = string(layout.Classify(tile.Err))
		rec.Error = tile.Err.Error()
	}
	return rec
}
