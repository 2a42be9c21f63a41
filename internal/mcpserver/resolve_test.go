// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath_Directory(t *testing.T) {
	dir := writeDashboard(t)
	info, err := ResolvePath(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, info.AbsPath)
	assert.True(t, info.IsDir)
}

func TestResolvePath_EmptyIsCwd(t *testing.T) {
	info, err := ResolvePath("")
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	wd, err = filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, wd, info.AbsPath)
}

func TestResolvePath_DashboardFile(t *testing.T) {
	dir := writeDashboard(t)
	for _, name := range []string{"board.yml", "board.TOML"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		info, err := ResolvePath(path)
		require.NoError(t, err, name)
		assert.False(t, info.IsDir)
	}
}

func TestResolvePath_Errors(t *testing.T) {
	dir := writeDashboard(t)
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("x"), 0o600))

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing", filepath.Join(dir, "nope"), "cannot resolve path"},
		{"wrong extension", notes, "is not a dashboard file"},
		{"system file", "/etc/passwd", "is not a dashboard file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePath(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestResolvePath_Symlink(t *testing.T) {
	dir := writeDashboard(t)
	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, os.Symlink(dir, link))

	info, err := ResolvePath(link)
	require.NoError(t, err)
	assert.Equal(t, dir, info.AbsPath)
}
