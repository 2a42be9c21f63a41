// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Mars303004/kpiboard/internal/layout"
)

func init() {
	RegisterFormatter(NewHTMLDirFormatter())
}

// HTMLDirFormatter writes the dashboard as a directory: index.html with an
// external stylesheet under assets/, plus page.json for downstream tooling.
type HTMLDirFormatter struct{}

// Compile-time interface checks.
var (
	_ Formatter          = (*HTMLDirFormatter)(nil)
	_ DirectoryFormatter = (*HTMLDirFormatter)(nil)
)

// NewHTMLDirFormatter returns a new HTMLDirFormatter.
func NewHTMLDirFormatter() *HTMLDirFormatter {
	return &HTMLDirFormatter{}
}

// Name returns the format name.
func (h *HTMLDirFormatter) Name() string {
	return "html-dir"
}

// Format returns an error directing users to use --output (-o) with html-dir.
func (h *HTMLDirFormatter) Format(_ *layout.Page, _ io.Writer) error {
	return fmt.Errorf("html-dir format requires --output (-o) flag to specify output directory")
}

// FormatDir writes the dashboard to dir as index.html, page.json and
// assets/kpiboard.css.
func (h *HTMLDirFormatter) FormatDir(page *layout.Page, dir string) error {
	assetsDir := filepath.Join(dir, "assets")
	if err := os.MkdirAll(assetsDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(assetsDir, "kpiboard.css"), []byte(dashboardCSS), 0o600); err != nil { //nolint:gosec // dashboard assets are meant to be readable
		return fmt.Errorf("write kpiboard.css: %w", err)
	}

	envelope, err := json.MarshalIndent(NewEnvelope(page), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal page.json: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "page.json"), append(envelope, '\n'), 0o600); err != nil { //nolint:gosec // user-specified output path
		return fmt.Errorf("write page.json: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "index.html")) //nolint:gosec // path is user-specified output directory
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	defer f.Close() //nolint:errcheck // best-effort close

	data := buildHTMLData(page)
	data.StylesheetHref = "assets/kpiboard.css"
	if err := dashboardTemplate().Execute(f, data); err != nil {
		return fmt.Errorf("execute html-dir template: %w", err)
	}
	return nil
}
