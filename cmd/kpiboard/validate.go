// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mars303004/kpiboard/internal/config"
)

// validateCmd checks a dashboard file without rendering it.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a dashboard file",
	Long: `Validate a dashboard file and report every problem at once: unknown
units, non-finite values, duplicate or missing metrics, overlapping or
out-of-grid cells, and malformed chart options.

With no argument the current directory is searched for kpiboard.yaml or
kpiboard.toml. The global config is layered underneath, as for render.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	cfg, resolved, err := config.Resolve(path)
	if err != nil {
		return exitError(ExitInvalidArgs, "kpiboard: cannot load %q (%v)", displayPath(resolved), err)
	}
	if err := config.Validate(cfg); err != nil {
		return exitError(ExitInvalidArgs, "kpiboard: %s: %v", displayPath(resolved), err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "valid: %d metrics, %d cells (%s)\n",
		len(cfg.Metrics), len(cfg.Layout), displayPath(resolved))
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return "built-in dashboard"
	}
	return path
}
