// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

// Package server serves the dashboard over HTTP. Every page request is one
// render pass against the configured metric source.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Mars303004/kpiboard/internal/layout"
	"github.com/Mars303004/kpiboard/internal/metric"
	"github.com/Mars303004/kpiboard/internal/output"
	"github.com/Mars303004/kpiboard/internal/promexport"
	"github.com/Mars303004/kpiboard/internal/registry"
)

// DefaultRequestTimeout bounds a single request, render pass included.
const DefaultRequestTimeout = 30 * time.Second

// Options configures a Server.
type Options struct {
	// Source supplies the metric records for every render pass.
	Source registry.Source

	// Layout places metrics on the page.
	Layout layout.Layout

	// Render carries the default period and display options. A request's
	// ?period= overrides the period.
	Render layout.Options

	// Exporter receives per-pass statistics and serves /metrics. Nil
	// creates a fresh exporter.
	Exporter *promexport.Exporter

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// RequestTimeout defaults to DefaultRequestTimeout.
	RequestTimeout time.Duration
}

// Server renders the dashboard on demand.
type Server struct {
	src      registry.Source
	layout   layout.Layout
	render   layout.Options
	exporter *promexport.Exporter
	logger   *slog.Logger
	timeout  time.Duration
	html     output.Formatter
}

// New creates a Server from opts.
func New(opts Options) *Server {
	s := &Server{
		src:      opts.Source,
		layout:   opts.Layout,
		render:   opts.Render,
		exporter: opts.Exporter,
		logger:   opts.Logger,
		timeout:  opts.RequestTimeout,
		html:     output.NewHTMLFormatter(),
	}
	if s.exporter == nil {
		s.exporter = promexport.New()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.timeout <= 0 {
		s.timeout = DefaultRequestTimeout
	}
	s.render.Logger = s.logger
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(s.timeout))

	r.Get("/", s.serveDashboard)
	r.Get("/healthz", s.serveHealth)
	r.Method(http.MethodGet, "/metrics", s.exporter.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/page", s.servePage)
		r.Get("/metrics", s.serveMetrics)
		r.Get("/metrics/{name}", s.serveMetric)
	})
	return r
}

// renderPage runs one render pass and records it with the exporter.
func (s *Server) renderPage(r *http.Request) (*layout.Page, error) {
	opts := s.render
	if p := r.URL.Query().Get("period"); p != "" {
		opts.Period = p
	}
	start := time.Now()
	reg, err := registry.Load(r.Context(), s.src)
	if err != nil {
		s.exporter.ObserveFailure(time.Since(start))
		return nil, err
	}
	s.exporter.ObserveRegistry(reg)
	page, err := layout.Compose(r.Context(), reg, s.layout, opts)
	if err != nil {
		s.exporter.ObserveFailure(time.Since(start))
		return nil, err
	}
	elapsed := time.Since(start)
	s.exporter.ObservePage(page, elapsed)
	s.logger.Info("render pass",
		"request_id", chimw.GetReqID(r.Context()),
		"page", page.ID,
		"tiles", len(page.Tiles()),
		"errors", len(page.Errors()),
		"elapsed", elapsed)
	return page, nil
}

func (s *Server) serveDashboard(w http.ResponseWriter, r *http.Request) {
	page, err := s.renderPage(r)
	if err != nil {
		s.logger.Error("render failed", "request_id", chimw.GetReqID(r.Context()), "error", err)
		http.Error(w, "render failed: "+err.Error(), renderStatus(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.html.Format(page, w); err != nil {
		s.logger.Error("write dashboard", "error", err)
	}
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	page, err := s.renderPage(r)
	if err != nil {
		s.logger.Error("render failed", "request_id", chimw.GetReqID(r.Context()), "error", err)
		writeError(w, renderStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, output.NewEnvelope(page))
}

type metricsResponse struct {
	Metrics []metric.Summary `json:"metrics"`
}

func (s *Server) serveMetrics(w http.ResponseWriter, r *http.Request) {
	reg, err := registry.Load(r.Context(), s.src)
	if err != nil {
		writeError(w, renderStatus(err), err)
		return
	}
	resp := metricsResponse{Metrics: make([]metric.Summary, 0, reg.Len())}
	for _, rec := range reg.All() {
		resp.Metrics = append(resp.Metrics, rec.Summarize(s.render.Renderer.CurrencySymbol))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) serveMetric(w http.ResponseWriter, r *http.Request) {
	reg, err := registry.Load(r.Context(), s.src)
	if err != nil {
		writeError(w, renderStatus(err), err)
		return
	}
	rec, err := reg.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		var nf *registry.NotFoundError
		if errors.As(err, &nf) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, rec.Summarize(s.render.Renderer.CurrencySymbol))
}

func (s *Server) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// renderStatus maps a failed pass to a status code. Cancellation and
// deadline errors come from the client or the timeout middleware.
func renderStatus(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
