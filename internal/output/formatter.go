// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

// Package output defines the Formatter interface for writing a rendered
// dashboard page in various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/Mars303004/kpiboard/internal/layout"
)

// Formatter writes a rendered page to the given writer in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "text", "json", "html").
	Name() string

	// Format writes the page to w.
	Format(page *layout.Page, w io.Writer) error
}

// DirectoryFormatter extends Formatter for formats that produce a directory
// of files (e.g., index.html + assets/) instead of a single stream.
type DirectoryFormatter interface {
	Formatter
	FormatDir(page *layout.Page, dir string) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, strings.Join(formatNames(), ", "))
	}
	return f, nil
}

// FormatNames returns the registered format names, sorted.
func FormatNames() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	return formatNames()
}

// resetFmtForTesting clears the formatter registry. Only for use in tests.
func resetFmtForTesting() {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry = make(map[string]Formatter)
}

func formatNames() []string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
