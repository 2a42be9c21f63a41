// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

// Package testable abstracts the file operations the CLI performs so tests
// can inject failures without touching the real file system.
package testable

import (
	"io"
	"os"
)

// FileSystem is the subset of file operations kpiboard commands use.
type FileSystem interface {
	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// Create creates or truncates the named file for writing.
	Create(name string) (io.WriteCloser, error)

	// MkdirAll creates path along with any necessary parents.
	MkdirAll(path string, perm os.FileMode) error
}

// OsFileSystem delegates to the os package.
type OsFileSystem struct{}

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Create wraps os.Create.
func (OsFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name) //nolint:gosec // caller controls path
}

// MkdirAll wraps os.MkdirAll.
func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// DefaultFS is the production FileSystem.
var DefaultFS FileSystem = OsFileSystem{}
