// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_EmptyDirUsesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, path, err := Resolve(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default().Title, cfg.Title)
}

func TestResolve_File(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`title: Ops
metrics:
  - name: Uptime
    value: 99.9
layout:
  - metric: Uptime
    kind: progressBar
`), 0o600))

	cfg, got, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "Ops", cfg.Title)
}

func TestResolve_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, _, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve_GlobalDefaults(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "kpiboard"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "kpiboard", "config.yaml"), []byte("currency_symbol: $\n"), 0o600))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`metrics:
  - name: Revenue
    value: 10
    unit: currency
layout:
  - metric: Revenue
    kind: progressBar
`), 0o600))

	d, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), d.Path)
	assert.Equal(t, "$", d.Options.Renderer.CurrencySymbol)
}

func TestOpen_InvalidConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`metrics:
  - name: Revenue
    value: 10
layout:
  - metric: Ghost
    kind: progressBar
`), 0o600))

	_, err := Open(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `layout[0].metric: unknown metric "Ghost"`)
}

func TestBuild_Default(t *testing.T) {
	d, err := Build(Default(), "")
	require.NoError(t, err)
	assert.Equal(t, "XYZ Indicator", d.Layout.Title)
	assert.Equal(t, "Rp", d.Options.Renderer.CurrencySymbol)

	records, err := d.Source.Metrics(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, len(Default().Metrics))
}
