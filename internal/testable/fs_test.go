// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOsFileSystem_CreateAndStat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, DefaultFS.MkdirAll(dir, 0o750))

	path := filepath.Join(dir, "out.txt")
	w, err := DefaultFS.Create(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, "hello")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	info, err := DefaultFS.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 5, info.Size())
}

func TestMockFileSystem_Overrides(t *testing.T) {
	boom := errors.New("boom")
	m := &MockFileSystem{
		CreateFn:   func(string) (io.WriteCloser, error) { return nil, boom },
		MkdirAllFn: func(string, os.FileMode) error { return boom },
	}

	_, err := m.Create(filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, m.MkdirAll(t.TempDir(), 0o750), boom)
}

func TestMockFileSystem_FallsThrough(t *testing.T) {
	m := &MockFileSystem{}
	dir := t.TempDir()

	info, err := m.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = m.Stat(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
