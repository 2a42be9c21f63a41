// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	kpilog "github.com/Mars303004/kpiboard/internal/log"
)

// Global flag values.
var (
	verbose   bool
	quiet     bool
	noColor   bool
	logFormat string
)

// rootCmd is the base command for kpiboard.
var rootCmd = &cobra.Command{
	Use:   "kpiboard",
	Short: "Render KPI dashboards from a metrics file",
	Long: `Kpiboard turns a file of KPI records and a grid layout into a dashboard
page: progress bars, circular gauges, line and bar series, hiring funnels,
and star ratings. Pages render to the terminal, JSON, Markdown, or HTML, or
are served live over HTTP with Prometheus metrics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		format, err := kpilog.ParseFormat(logFormat)
		if err != nil {
			return exitError(ExitInvalidArgs, "kpiboard: %v", err)
		}
		kpilog.Setup(verbose, quiet, format)
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
