// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Mars303004/kpiboard/internal/config"
	"github.com/Mars303004/kpiboard/internal/layout"
	"github.com/Mars303004/kpiboard/internal/metric"
	"github.com/Mars303004/kpiboard/internal/output"
	"github.com/Mars303004/kpiboard/internal/registry"
)

// ListMetricsInput is the input schema for the list_metrics tool.
type ListMetricsInput struct {
	Config string `json:"config,omitempty" jsonschema:"Dashboard file or directory (defaults to current directory; falls back to the built-in dashboard)"`
	Sample bool   `json:"sample,omitempty" jsonschema:"Replace configured values with seeded sample data"`
	Seed   int64  `json:"seed,omitempty" jsonschema:"Seed for sample data (default 1)"`
}

// GetMetricInput is the input schema for the get_metric tool.
type GetMetricInput struct {
	Config string `json:"config,omitempty" jsonschema:"Dashboard file or directory (defaults to current directory)"`
	Name   string `json:"name" jsonschema:"Metric name; matched case-insensitively"`
	Sample bool   `json:"sample,omitempty" jsonschema:"Replace configured values with seeded sample data"`
	Seed   int64  `json:"seed,omitempty" jsonschema:"Seed for sample data (default 1)"`
}

// RenderDashboardInput is the input schema for the render_dashboard tool.
type RenderDashboardInput struct {
	Config string `json:"config,omitempty" jsonschema:"Dashboard file or directory (defaults to current directory)"`
	Format string `json:"format,omitempty" jsonschema:"Output format: json, jsonl, markdown, text, html (default: json)"`
	Period string `json:"period,omitempty" jsonschema:"Reporting period shown in the page header, e.g. 2025-06"`
	Sample bool   `json:"sample,omitempty" jsonschema:"Replace configured values with seeded sample data"`
	Seed   int64  `json:"seed,omitempty" jsonschema:"Seed for sample data (default 1)"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all kpiboard tools to the MCP server.
func registerTools(server *mcp.Server) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_metrics",
		Description: "List every KPI on the dashboard with its current value, target, progress toward target, and period-over-period change.",
		Annotations: readOnly,
	}, handleListMetrics)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_metric",
		Description: "Get one KPI by name: raw value (number or monthly series), formatted headline, target, progress, and change.",
		Annotations: readOnly,
	}, handleGetMetric)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_dashboard",
		Description: "Render the full dashboard page (progress bars, gauges, series, funnels, star ratings) in the requested format. Widgets that fail render as inline error placeholders.",
		Annotations: readOnly,
	}, handleRenderDashboard)
}

// openDashboard resolves and opens the dashboard at path, optionally
// swapping its values for sample data.
func openDashboard(path string, sample bool, seed int64) (*config.Dashboard, error) {
	info, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}
	d, err := config.Open(info.AbsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	if sample {
		if seed == 0 {
			seed = 1
		}
		d.Source = registry.NewSampleSource(d.Source, uint64(seed)) //nolint:gosec // any seed is fine
	}
	return d, nil
}

func handleListMetrics(ctx context.Context, _ *mcp.CallToolRequest, input ListMetricsInput) (*mcp.CallToolResult, any, error) {
	d, err := openDashboard(input.Config, input.Sample, input.Seed)
	if err != nil {
		return nil, nil, err
	}
	reg, err := registry.Load(ctx, d.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("load metrics: %w", err)
	}

	summaries := make([]metric.Summary, 0, reg.Len())
	for _, rec := range reg.All() {
		summaries = append(summaries, rec.Summarize(d.Options.Renderer.CurrencySymbol))
	}
	return jsonResult(map[string]any{"metrics": summaries})
}

func handleGetMetric(ctx context.Context, _ *mcp.CallToolRequest, input GetMetricInput) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, nil, fmt.Errorf("name is required")
	}
	d, err := openDashboard(input.Config, input.Sample, input.Seed)
	if err != nil {
		return nil, nil, err
	}
	reg, err := registry.Load(ctx, d.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("load metrics: %w", err)
	}
	rec, err := reg.Lookup(input.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (available: %s)", err, strings.Join(reg.Names(), ", "))
	}
	return jsonResult(rec.Summarize(d.Options.Renderer.CurrencySymbol))
}

func handleRenderDashboard(ctx context.Context, _ *mcp.CallToolRequest, input RenderDashboardInput) (*mcp.CallToolResult, any, error) {
	// Determine format (default to json for MCP consumers).
	format := "json"
	if input.Format != "" {
		format = input.Format
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}
	if _, ok := formatter.(output.DirectoryFormatter); ok {
		return nil, nil, fmt.Errorf("format %q writes a directory and is not available over MCP", format)
	}

	d, err := openDashboard(input.Config, input.Sample, input.Seed)
	if err != nil {
		return nil, nil, err
	}
	opts := d.Options
	if input.Period != "" {
		opts.Period = input.Period
	}
	opts.Logger = slog.Default()

	page, err := layout.Render(ctx, d.Source, d.Layout, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("render failed: %w", err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(page, &buf); err != nil {
		return nil, nil, fmt.Errorf("format output: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}
