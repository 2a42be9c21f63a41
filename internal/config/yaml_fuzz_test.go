// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"testing"
)

func FuzzConfigParse(f *testing.F) {
	f.Add([]byte("title: Board\ncolumns: 4\n"))
	f.Add([]byte(""))
	f.Add([]byte("---"))
	f.Add([]byte("metrics:\n  - name: NPS\n    value: [1, 2, 3]\n"))
	f.Add([]byte("metrics:\n  - name: NPS\n    value: {a: 1}\n"))
	f.Add([]byte("{invalid"))

	f.Fuzz(func(t *testing.T, data []byte) {
		cfg, err := Parse(data, FormatYAML)
		if err != nil {
			return
		}
		// Parsed configs must survive validation, conversion, and re-encoding.
		_ = Validate(cfg)
		_, _ = cfg.Records()
		_, _ = cfg.BuildLayout()
		_ = Write(io.Discard, cfg)
	})
}
