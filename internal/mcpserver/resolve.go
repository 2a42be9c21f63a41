// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the dashboard's metrics and render pass as tools over stdio.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathInfo holds the resolved location of a dashboard.
type PathInfo struct {
	// AbsPath is the absolute, symlink-resolved path.
	AbsPath string
	// IsDir is true when AbsPath is a directory to search for a dashboard file.
	IsDir bool
}

// dashboardExts are the file extensions accepted for an explicit file.
var dashboardExts = []string{".yaml", ".yml", ".toml"}

// ResolvePath resolves a dashboard path to an absolute path. A directory is
// accepted as-is; a file must carry a YAML or TOML extension so a tool call
// cannot coax the server into parsing arbitrary files.
func ResolvePath(path string) (*PathInfo, error) {
	if path == "" {
		path = "."
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist", path)
	}
	if info.IsDir() {
		return &PathInfo{AbsPath: absPath, IsDir: true}, nil
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	for _, want := range dashboardExts {
		if ext == want {
			return &PathInfo{AbsPath: absPath}, nil
		}
	}
	return nil, fmt.Errorf("%q is not a dashboard file (want %s)", path, strings.Join(dashboardExts, ", "))
}
