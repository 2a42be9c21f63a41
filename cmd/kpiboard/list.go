// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Mars303004/kpiboard/internal/metric"
	"github.com/Mars303004/kpiboard/internal/registry"
)

// List- and get-specific flag values.
var (
	listSource sourceFlags
	listJSON   bool

	getSource sourceFlags
	getJSON   bool
)

// listCmd prints every metric on the dashboard.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the dashboard's metrics",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

// getCmd prints one metric.
var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show one metric",
	Long:  "Show one metric's value, target, progress, and change. Names match case-insensitively.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	listSource.register(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print machine-readable JSON")

	getSource.register(getCmd)
	getCmd.Flags().BoolVar(&getJSON, "json", false, "print machine-readable JSON")
}

func runList(cmd *cobra.Command, _ []string) error {
	d, err := listSource.open()
	if err != nil {
		return err
	}
	reg, err := registry.Load(cmd.Context(), d.Source)
	if err != nil {
		return exitError(ExitTotalFailure, "kpiboard: load metrics (%v)", err)
	}

	summaries := make([]metric.Summary, 0, reg.Len())
	for _, rec := range reg.All() {
		summaries = append(summaries, rec.Summarize(d.Options.Renderer.CurrencySymbol))
	}

	w := cmd.OutOrStdout()
	if listJSON {
		return writeJSON(w, map[string]any{"metrics": summaries})
	}

	_, _ = color.New(color.Bold).Fprintf(w, "%-32s %-18s %-18s %-9s %s\n", "METRIC", "VALUE", "TARGET", "PROGRESS", "CHANGE")
	for _, s := range summaries {
		_, _ = fmt.Fprintf(w, "%-32s %-18s %-18s %-9s %s\n",
			s.Name, s.Display, orDash(s.TargetDisplay), progressText(s), changeText(s))
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	d, err := getSource.open()
	if err != nil {
		return err
	}
	reg, err := registry.Load(cmd.Context(), d.Source)
	if err != nil {
		return exitError(ExitTotalFailure, "kpiboard: load metrics (%v)", err)
	}
	rec, err := reg.Lookup(args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, "kpiboard: %v (available: %s)", err, strings.Join(reg.Names(), ", "))
	}
	s := rec.Summarize(d.Options.Renderer.CurrencySymbol)

	w := cmd.OutOrStdout()
	if getJSON {
		return writeJSON(w, s)
	}

	_, _ = color.New(color.Bold).Fprintln(w, s.Name)
	_, _ = fmt.Fprintf(w, "  Value:    %s\n", s.Display)
	if pts := rec.Value.Points(); rec.Value.IsSeries() {
		vals := make([]string, len(pts))
		for i, p := range pts {
			vals[i] = metric.FormatValue(p, rec.Unit, d.Options.Renderer.CurrencySymbol)
		}
		_, _ = fmt.Fprintf(w, "  Series:   %s\n", strings.Join(vals, ", "))
	}
	_, _ = fmt.Fprintf(w, "  Target:   %s\n", orDash(s.TargetDisplay))
	_, _ = fmt.Fprintf(w, "  Progress: %s\n", progressText(s))
	_, _ = fmt.Fprintf(w, "  Change:   %s\n", changeText(s))
	_, _ = fmt.Fprintf(w, "  Unit:     %s\n", s.Unit)
	return nil
}

func progressText(s metric.Summary) string {
	if s.Progress == nil {
		return "-"
	}
	return metric.FormatValue(*s.Progress*100, metric.UnitPercent, "")
}

func changeText(s metric.Summary) string {
	if s.Delta == nil {
		return "-"
	}
	text := metric.FormatChange(s.Delta.Percent)
	if s.Delta.Direction == metric.DirectionFlat {
		return text
	}
	if s.Delta.Favorable {
		return color.GreenString(text)
	}
	return color.RedString(text)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return exitError(ExitTotalFailure, "kpiboard: write json (%v)", err)
	}
	return nil
}
