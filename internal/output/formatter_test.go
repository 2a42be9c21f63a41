// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mars303004/kpiboard/internal/layout"
)

// Compile-time interface check.
var _ Formatter = (*stubFormatter)(nil)

type stubFormatter struct{}

func (s *stubFormatter) Name() string                            { return "stub" }
func (s *stubFormatter) Format(_ *layout.Page, _ io.Writer) error { return nil }

func TestFormatterInterface(t *testing.T) {
	var f Formatter = &stubFormatter{}
	assert.Equal(t, "stub", f.Name())

	var buf bytes.Buffer
	assert.NoError(t, f.Format(nil, &buf))
}

func TestRegisterAndGetFormatter(t *testing.T) {
	resetFmtForTesting()
	defer restoreFormatters()

	RegisterFormatter(&stubFormatter{})
	f, err := GetFormatter("stub")
	require.NoError(t, err)
	assert.Equal(t, "stub", f.Name())
}

func TestGetFormatter_Unknown(t *testing.T) {
	_, err := GetFormatter("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format: "yaml"`)
	assert.Contains(t, err.Error(), "json, jsonl, markdown")
}

func TestFormatNames_BuiltIns(t *testing.T) {
	assert.Equal(t, []string{"html", "html-dir", "json", "jsonl", "markdown", "text"}, FormatNames())
}

func TestRegisterFormatter_Replaces(t *testing.T) {
	resetFmtForTesting()
	defer restoreFormatters()

	RegisterFormatter(NewJSONFormatter())
	replacement := &JSONFormatter{Compact: true}
	RegisterFormatter(replacement)

	f, err := GetFormatter("json")
	require.NoError(t, err)
	assert.Same(t, replacement, f)
	assert.Equal(t, []string{"json"}, FormatNames())
}

func TestAllFormatters_EmptyPage(t *testing.T) {
	for _, name := range []string{"text", "json", "jsonl", "markdown", "html"} {
		t.Run(name, func(t *testing.T) {
			f, err := GetFormatter(name)
			require.NoError(t, err)
			var buf bytes.Buffer
			assert.NoError(t, f.Format(emptyPage(), &buf))
		})
	}
}
