// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Mars303004/kpiboard/internal/config"
	"github.com/Mars303004/kpiboard/internal/registry"
)

// sourceFlags selects the dashboard file and optional sample data. Every
// command that reads a dashboard binds its own copy.
type sourceFlags struct {
	config string
	sample bool
	seed   uint64
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "dashboard file or directory (default: ./kpiboard.yaml, then the built-in dashboard)")
	cmd.Flags().BoolVar(&f.sample, "sample", false, "replace configured values with generated sample data")
	cmd.Flags().Uint64Var(&f.seed, "seed", 1, "seed for --sample")
}

// open loads, validates, and converts the selected dashboard. Failures map
// to ExitInvalidArgs.
func (f *sourceFlags) open() (*config.Dashboard, error) {
	d, err := config.Open(f.config)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "kpiboard: %v", err)
	}
	if d.Path == "" {
		slog.Debug("no dashboard file found, using built-in dashboard")
	} else {
		slog.Debug("loaded dashboard", "path", d.Path)
	}
	if f.sample {
		d.Source = registry.NewSampleSource(d.Source, f.seed)
		slog.Debug("using sample data", "seed", f.seed)
	}
	return d, nil
}
