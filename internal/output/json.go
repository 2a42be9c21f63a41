// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Mars303004/kpiboard/internal/layout"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the page with metadata for the JSON output format.
type JSONEnvelope struct {
	Page     *layout.Page `json:"page"`
	Metadata JSONMetadata `json:"metadata"`
}

// JSONMetadata describes the render pass that produced the page.
type JSONMetadata struct {
	Tiles       int         `json:"tiles"`
	Errors      []JSONError `json:"errors"`
	GeneratedAt string      `json:"generated_at"`
}

// JSONError is one placeholder tile.
type JSONError struct {
	Metric  string `json:"metric"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Class   string `json:"class"`
	Message string `json:"message"`
}

// JSONFormatter writes the page as a JSON object with a metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the page as a JSON document with a metadata envelope to w.
// Output is pretty-printed for terminals and buffers, compact for pipes and
// files, and always compact when Compact is set.
func (f *JSONFormatter) Format(page *layout.Page, w io.Writer) error {
	envelope := NewEnvelope(page)
	if f.nowFunc != nil {
		envelope.Metadata.GeneratedAt = f.nowFunc().UTC().Format(time.RFC3339)
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// NewEnvelope builds the JSON envelope for page. It is shared with the HTTP
// and MCP surfaces so every JSON consumer sees the same shape.
func NewEnvelope(page *layout.Page) JSONEnvelope {
	errs := make([]JSONError, 0)
	for _, t := range page.Errors() {
		e := JSONError{Metric: t.Metric, Row: t.Row, Col: t.Col, Message: t.Err.Error()}
		e.Class = string(layout.Classify(t.Err))
		errs = append(errs, e)
	}
	return JSONEnvelope{
		Page: page,
		Metadata: JSONMetadata{
			Tiles:       len(page.Tiles()),
			Errors:      errs,
			GeneratedAt: page.GeneratedAt.UTC().Format(time.RFC3339),
		},
	}
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}
	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}
	return false
}
