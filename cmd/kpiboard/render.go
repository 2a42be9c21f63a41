// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mars303004/kpiboard/internal/layout"
	"github.com/Mars303004/kpiboard/internal/output"
)

// Render-specific flag values.
var (
	renderSource sourceFlags
	renderFormat string
	renderOutput string
	renderPeriod string
	renderStrict bool
)

// renderCmd renders the dashboard page once.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dashboard page",
	Long: `Run one render pass over the dashboard and write the page.

Widgets that cannot render (unknown metric, value outside the gauge range,
series that do not match their labels) become error placeholders; the rest
of the page still renders. Use --strict to exit 2 when that happens.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderSource.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "text",
		"output format: "+strings.Join(output.FormatNames(), ", "))
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file path, or directory for html-dir (default: stdout)")
	renderCmd.Flags().StringVar(&renderPeriod, "period", "", "reporting period shown in the header (overrides the file)")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "exit non-zero when any widget fails")
}

func runRender(cmd *cobra.Command, _ []string) error {
	formatter, err := output.GetFormatter(renderFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "kpiboard: %v", err)
	}
	df, isDir := formatter.(output.DirectoryFormatter)
	if isDir && renderOutput == "" {
		return exitError(ExitInvalidArgs, "kpiboard: %s format requires --output (-o) flag to specify output directory", renderFormat)
	}

	d, err := renderSource.open()
	if err != nil {
		return err
	}
	opts := d.Options
	if renderPeriod != "" {
		opts.Period = renderPeriod
	}

	start := time.Now()
	page, err := layout.Render(cmd.Context(), d.Source, d.Layout, opts)
	if err != nil {
		return exitError(ExitTotalFailure, "kpiboard: render failed (%v)", err)
	}

	if isDir {
		if err := df.FormatDir(page, renderOutput); err != nil {
			return exitError(ExitTotalFailure, "kpiboard: formatting failed (%v)", err)
		}
	} else {
		w := cmd.OutOrStdout()
		if renderOutput != "" {
			f, err := cmdFS.Create(renderOutput)
			if err != nil {
				return exitError(ExitInvalidArgs, "kpiboard: cannot create output file %q (%v)", renderOutput, err)
			}
			defer f.Close() //nolint:errcheck // best-effort close on output file
			w = f
		}
		if err := formatter.Format(page, w); err != nil {
			return exitError(ExitTotalFailure, "kpiboard: formatting failed (%v)", err)
		}
	}

	tiles, failed := len(page.Tiles()), len(page.Errors())
	slog.Info("render complete", "page", page.ID, "widgets", tiles, "errors", failed, "duration", time.Since(start))

	if failed > 0 && renderStrict {
		return exitError(ExitPartialFailure, "kpiboard: %d of %d widgets failed", failed, tiles)
	}
	return nil
}
