// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"github.com/Mars303004/kpiboard/internal/layout"
	"github.com/Mars303004/kpiboard/internal/registry"
	"github.com/Mars303004/kpiboard/internal/widget"
)

// Dashboard is a validated configuration converted to the types a render
// pass needs.
type Dashboard struct {
	Config *Config

	// Path is the file the dashboard came from, or "" for the built-in default.
	Path string

	Source registry.Source
	Layout layout.Layout

	// Options carries the configured period and currency symbol.
	Options layout.Options
}

// Resolve loads the dashboard named by path and layers it over the global
// config. An empty path means the current directory; a directory is
// searched with LoadDir; anything else is read as a file.
func Resolve(path string) (*Config, string, error) {
	if path == "" {
		path = "."
	}
	var (
		cfg *Config
		err error
	)
	info, statErr := os.Stat(path)
	if statErr == nil && info.IsDir() {
		cfg, path, err = LoadDir(path)
	} else {
		cfg, err = Load(path)
	}
	if err != nil {
		return nil, path, err
	}

	global, err := LoadGlobal()
	if err != nil {
		return nil, path, fmt.Errorf("load global config: %w", err)
	}
	return Merge(global, cfg), path, nil
}

// Open resolves, validates, and converts the dashboard at path.
func Open(path string) (*Dashboard, error) {
	cfg, resolved, err := Resolve(path)
	if err != nil {
		return nil, err
	}
	return Build(cfg, resolved)
}

// Build validates cfg and converts it. path is recorded for messages only.
func Build(cfg *Config, path string) (*Dashboard, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	records, err := cfg.Records()
	if err != nil {
		return nil, err
	}
	l, err := cfg.BuildLayout()
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Config: cfg,
		Path:   path,
		Source: registry.NewStaticSource(records),
		Layout: l,
		Options: layout.Options{
			Period:   cfg.Period,
			Renderer: widget.Renderer{CurrencySymbol: cfg.CurrencySymbol},
		},
	}, nil
}
