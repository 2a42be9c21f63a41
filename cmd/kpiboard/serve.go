// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mars303004/kpiboard/internal/promexport"
	"github.com/Mars303004/kpiboard/internal/server"
)

// Serve-specific flag values.
var (
	serveSource  sourceFlags
	serveAddr    string
	servePeriod  string
	serveTimeout time.Duration
)

// serveCmd serves the dashboard over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Serve the dashboard over HTTP. Every request runs a fresh render pass.

Routes:
  GET /                    HTML page (?period= overrides the period)
  GET /api/page            page as JSON
  GET /api/metrics         all metrics
  GET /api/metrics/{name}  one metric
  GET /healthz             liveness
  GET /metrics             Prometheus metrics

SIGINT or SIGTERM shuts the server down gracefully.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveSource.register(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8080", "listen address")
	serveCmd.Flags().StringVar(&servePeriod, "period", "", "default reporting period (overrides the file)")
	serveCmd.Flags().DurationVar(&serveTimeout, "request-timeout", server.DefaultRequestTimeout, "per-request render timeout")
}

func runServe(cmd *cobra.Command, _ []string) error {
	d, err := serveSource.open()
	if err != nil {
		return err
	}
	opts := d.Options
	if servePeriod != "" {
		opts.Period = servePeriod
	}

	srv := server.New(server.Options{
		Source:         d.Source,
		Layout:         d.Layout,
		Render:         opts,
		Exporter:       promexport.New(),
		Logger:         slog.Default(),
		RequestTimeout: serveTimeout,
	})

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, serveAddr); err != nil {
		return exitError(ExitTotalFailure, "kpiboard: %v", err)
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
