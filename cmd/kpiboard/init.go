// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Mars303004/kpiboard/internal/config"
)

// Init-specific flag values.
var initForce bool

// initCmd writes a starter dashboard file.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter kpiboard.yaml",
	Long: `Write the built-in product dashboard to kpiboard.yaml in dir (default:
the current directory) as a starting point for your own metrics.

An existing kpiboard.yaml is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing kpiboard.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	path := filepath.Join(dir, config.FileName)

	if _, err := cmdFS.Stat(path); err == nil && !initForce {
		return exitError(ExitInvalidArgs, "kpiboard: %s already exists (use --force to overwrite)", path)
	}
	if err := cmdFS.MkdirAll(dir, 0o750); err != nil {
		return exitError(ExitInvalidArgs, "kpiboard: cannot create directory %q (%v)", dir, err)
	}

	f, err := cmdFS.Create(path)
	if err != nil {
		return exitError(ExitInvalidArgs, "kpiboard: cannot create %q (%v)", path, err)
	}
	cfg := config.Default()
	if err := config.Write(f, cfg); err != nil {
		_ = f.Close()
		return exitError(ExitTotalFailure, "kpiboard: write %q (%v)", path, err)
	}
	if err := f.Close(); err != nil {
		return exitError(ExitTotalFailure, "kpiboard: write %q (%v)", path, err)
	}
	slog.Debug("wrote dashboard", "path", path)

	w := cmd.OutOrStdout()
	_, _ = color.New(color.FgGreen).Fprint(w, "created ")
	_, _ = fmt.Fprintf(w, "%s (%d metrics, %d cells)\n", path, len(cfg.Metrics), len(cfg.Layout))
	_, _ = color.New(color.Faint).Fprintln(w, "next: kpiboard render -c "+path)
	return nil
}
