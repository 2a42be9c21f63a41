// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Flags(t *testing.T) {
	for _, name := range []string{"addr", "period", "request-timeout", "config", "sample", "seed"} {
		assert.NotNil(t, serveCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "127.0.0.1:8080", serveCmd.Flags().Lookup("addr").DefValue)
}

func TestServeCmd_ShutsDownWhenContextEnds(t *testing.T) {
	resetFlags(t)
	path := writeDashboard(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	serveCmd.SetContext(ctx)
	t.Cleanup(func() { serveCmd.SetContext(context.Background()) })

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"serve", "-c", path, "--addr", "127.0.0.1:0", "-q"})

	done := make(chan error, 1)
	go func() { done <- cmd.Execute() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("serve did not shut down")
	}
}

func TestServeCmd_BadAddress(t *testing.T) {
	resetFlags(t)
	path := writeDashboard(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"serve", "-c", path, "--addr", "not-an-address", "-q"})
	ece := requireExitCode(t, cmd.Execute(), ExitTotalFailure)
	assert.Contains(t, ece.Error(), "listen on not-an-address")
}

func TestServeCmd_InvalidConfig(t *testing.T) {
	resetFlags(t)
	path := writeTestFile(t, t.TempDir(), "kpiboard.yaml", "columns: -1\n")

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"serve", "-c", path})
	requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
}
