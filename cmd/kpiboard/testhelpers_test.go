// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const testDashboard = `title: Ops Board
period: 2025-06
columns: 2
metrics:
  - name: Revenue
    value: 20000000
    target: 100000000
    change: 12
    unit: currency
  - name: Uptime
    value: 99.5
    target: 99.9
    change: -0.2
  - name: Tickets
    value: [120, 100, 90]
    unit: count
    lower_is_better: true
layout:
  - metric: Revenue
    kind: progressBar
    row: 0
    col: 0
  - metric: Uptime
    kind: circularGauge
    row: 0
    col: 1
    range: [90, 100]
  - metric: Tickets
    kind: barSeries
    row: 1
    col: 0
    categories: [Apr, May, Jun]
`

// brokenDashboard passes validation, but its gauge value lies outside the
// gauge range, so the tile renders as a placeholder.
const brokenDashboard = `title: Broken
metrics:
  - name: Uptime
    value: 99.5
layout:
  - metric: Uptime
    kind: circularGauge
    row: 0
    col: 0
    range: [0, 50]
`

// newTestCmd redirects the root command's output and returns it.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetContext(context.Background())
	return rootCmd, stdout, stderr
}

// resetFlags restores every command's flags and bound variables to their
// defaults, since cobra commands are package-level singletons.
func resetFlags(t *testing.T) {
	t.Helper()
	cmds := append([]*cobra.Command{rootCmd, mcpServeCmd}, rootCmd.Commands()...)
	for _, cmd := range cmds {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
		cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
		if h := cmd.Flags().Lookup("help"); h != nil {
			_ = h.Value.Set("false")
		}
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

// writeTestFile creates a file under dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// writeDashboard writes testDashboard to a fresh directory and returns the
// file path.
func writeDashboard(t *testing.T) string {
	t.Helper()
	return writeTestFile(t, t.TempDir(), "kpiboard.yaml", testDashboard)
}
