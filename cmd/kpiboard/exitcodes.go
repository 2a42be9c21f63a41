// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the kpiboard CLI.
const (
	ExitOK             = 0 // Page rendered cleanly.
	ExitInvalidArgs    = 1 // Invalid arguments or dashboard file.
	ExitPartialFailure = 2 // Page rendered but some widgets failed (--strict only).
	ExitTotalFailure   = 3 // No page produced.
)

// exitCodeError carries a process exit code through cobra's error return.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. An empty message is replaced with a
// generic description of the code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitPartialFailure:
			msg = "kpiboard: some widgets failed"
		case ExitTotalFailure:
			msg = "kpiboard: render failed"
		default:
			msg = "kpiboard: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
