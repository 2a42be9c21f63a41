// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import "github.com/Mars303004/kpiboard/internal/testable"

// cmdFS is the file system used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS
