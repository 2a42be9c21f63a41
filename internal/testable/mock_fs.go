// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"io"
	"os"
)

// MockFileSystem is a test double for FileSystem. A non-nil function field
// replaces the corresponding method; nil fields fall through to the real
// file system.
type MockFileSystem struct {
	StatFn     func(name string) (os.FileInfo, error)
	CreateFn   func(name string) (io.WriteCloser, error)
	MkdirAllFn func(path string, perm os.FileMode) error
}

var real OsFileSystem

// Stat calls StatFn if set.
func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.StatFn != nil {
		return m.StatFn(name)
	}
	return real.Stat(name)
}

// Create calls CreateFn if set.
func (m *MockFileSystem) Create(name string) (io.WriteCloser, error) {
	if m.CreateFn != nil {
		return m.CreateFn(name)
	}
	return real.Create(name)
}

// MkdirAll calls MkdirAllFn if set.
func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return real.MkdirAll(path, perm)
}

var _ FileSystem = (*MockFileSystem)(nil)
