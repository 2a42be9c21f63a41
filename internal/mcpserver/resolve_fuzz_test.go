// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func FuzzResolvePath(f *testing.F) {
	f.Add(".")
	f.Add("")
	f.Add("/")
	f.Add("../../etc/passwd")
	f.Add(string(make([]byte, 4096)))
	f.Add("path/with\x00null.yaml")

	f.Fuzz(func(t *testing.T, input string) {
		info, err := ResolvePath(input)
		if err != nil || info.IsDir {
			return
		}
		if ext := strings.ToLower(filepath.Ext(info.AbsPath)); !slices.Contains(dashboardExts, ext) {
			t.Errorf("resolved non-dashboard file %q", info.AbsPath)
		}
	})
}
