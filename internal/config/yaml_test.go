// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
title: Ops Board
period: 2025-06
columns: 2
currency_symbol: $
metrics:
  - name: Revenue
    value: 20000000
    target: 100000000
    change: 12
    unit: currency
    icon: "💰"
  - name: Deployment Success Rate
    value: [80, 82.5, 81]
    unit: percent
layout:
  - metric: Revenue
    kind: progressBar
    row: 0
    col: 0
  - metric: Deployment Success Rate
    kind: line_series
    row: 0
    col: 1
    categories: [Apr, May, Jun]
`

const sampleTOML = `
title = "Ops Board"
columns = 2

[[metrics]]
name = "Revenue"
value = 20000000
target = 100000000
change = 12
unit = "currency"

[[metrics]]
name = "Deployment Success Rate"
value = [80, 82.5, 81]
unit = "percent"

[[layout]]
metric = "Revenue"
kind = "progressBar"
row = 0
col = 0

[[layout]]
metric = "Deployment Success Rate"
kind = "lineSeries"
row = 0
col = 1
categories = ["Apr", "May", "Jun"]
range = [0, 100]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ops Board", cfg.Title)
	assert.Equal(t, "2025-06", cfg.Period)
	assert.Equal(t, 2, cfg.Columns)
	assert.Equal(t, "$", cfg.CurrencySymbol)

	require.Len(t, cfg.Metrics, 2)
	rev := cfg.Metrics[0]
	assert.Equal(t, Scalar(20_000_000), rev.Value)
	require.NotNil(t, rev.Target)
	assert.InDelta(t, 100_000_000, float64(*rev.Target), 0)
	assert.InDelta(t, 12, float64(*rev.Change), 0)
	assert.Equal(t, "💰", rev.Icon)

	dep := cfg.Metrics[1]
	assert.True(t, dep.Value.List)
	assert.Equal(t, []float64{80, 82.5, 81}, dep.Value.Points)
	assert.Nil(t, dep.Target)

	require.Len(t, cfg.Layout, 2)
	assert.Equal(t, "line_series", cfg.Layout[1].Kind)
	assert.Equal(t, []string{"Apr", "May", "Jun"}, cfg.Layout[1].Categories)
	require.NoError(t, Validate(cfg))
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), TOMLFileName, sampleTOML)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ops Board", cfg.Title)
	require.Len(t, cfg.Metrics, 2)
	assert.Equal(t, Scalar(20_000_000), cfg.Metrics[0].Value)
	assert.InDelta(t, 100_000_000, float64(*cfg.Metrics[0].Target), 0)
	assert.Equal(t, List(80, 82.5, 81), cfg.Metrics[1].Value)
	require.Len(t, cfg.Layout, 2)
	assert.Equal(t, []float64{0, 100}, cfg.Layout[1].Range)
	require.NoError(t, Validate(cfg))
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "{{invalid yaml")
	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_UnknownKeyYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "title: x\ncolumn: 3\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column")
}

func TestLoad_UnknownKeyTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), TOMLFileName, "title = \"x\"\nbogus = 1\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: bogus")
}

func TestLoad_BadValueShape(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "metrics:\n  - name: A\n    value: {x: 1}\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value must be a number or a list of numbers")

	path = writeFile(t, t.TempDir(), TOMLFileName, "[[metrics]]\nname = \"A\"\nvalue = \"high\"\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a number")
}

func TestLoad_NullValue(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "metrics:\n  - name: A\n    value: null\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Metrics[0].Value.IsZero())
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Metrics)
}

func TestLoad_PermissionError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := writeFile(t, t.TempDir(), FileName, "title: x")
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() {
		_ = os.Chmod(path, 0o600) // restore for cleanup
	})

	cfg, err := Load(path)
	assert.Error(t, err, "should fail when file is unreadable")
	assert.Nil(t, cfg)
}

func TestLoadDir_PrefersYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "title: from yaml\n")
	writeFile(t, dir, TOMLFileName, "title = \"from toml\"\n")

	cfg, path, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "from yaml", cfg.Title)
	assert.Equal(t, filepath.Join(dir, FileName), path)
}

func TestLoadDir_FallsBackToTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TOMLFileName, "title = \"from toml\"\n")

	cfg, path, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "from toml", cfg.Title)
	assert.Equal(t, filepath.Join(dir, TOMLFileName), path)
}

func TestLoadDir_DefaultWhenMissing(t *testing.T) {
	cfg, path, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDir_InvalidFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "{{invalid")
	_, _, err := LoadDir(dir)
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	cfg := &Config{
		Title:   "Board",
		Columns: 2,
		Metrics: []MetricConfig{
			{Name: "Revenue", Value: Scalar(20_000_000), Target: Num(100_000_000), Unit: "currency"},
			{Name: "SIT", Value: List(85, 89), Unit: "score"},
		},
		Layout: []CellConfig{
			{Metric: "Revenue", Kind: "progressBar", Row: 0, Col: 0},
			{Metric: "SIT", Kind: "barSeries", Row: 0, Col: 1, Categories: []string{"Dev", "Mid"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg))

	out := buf.String()
	assert.Contains(t, out, "title: Board")
	assert.Contains(t, out, "value: 20000000")
	assert.Contains(t, out, "target: 100000000")
	assert.Contains(t, out, "value: [85, 89]")
	assert.Contains(t, out, "categories: [Dev, Mid]")
	assert.NotContains(t, out, "e+")
	assert.Contains(t, out, "\n  - name: Revenue", "2-space indentation")
}

func TestWrite_EmptyConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &Config{}))
	assert.Contains(t, buf.String(), "{}")
}

func TestWrite_RoundTripsDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Default()))

	cfg, err := Parse(buf.Bytes(), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", FileName)
	require.NoError(t, WriteFile(path, &Config{Title: "Nested"}))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Nested", cfg.Title)
}
