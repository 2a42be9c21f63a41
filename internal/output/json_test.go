// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatter_Name(t *testing.T) {
	assert.Equal(t, "json", NewJSONFormatter().Name())
}

func decodeJSON(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestJSONFormatter_Envelope(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(testPage(t), &buf))
	got := decodeJSON(t, buf.Bytes())

	meta := got["metadata"].(map[string]any)
	assert.EqualValues(t, 6, meta["tiles"])
	assert.Equal(t, "2025-06-30T12:00:00Z", meta["generated_at"])

	errs := meta["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, map[string]any{
		"metric":  "Ghost",
		"row":     float64(2),
		"col":     float64(0),
		"class":   "not_found",
		"message": `metric "Ghost" not found`,
	}, errs[0])

	page := got["page"].(map[string]any)
	assert.Equal(t, "Product KPIs", page["title"])
	assert.Equal(t, "2025-06", page["period"])
	assert.EqualValues(t, 3, page["columns"])

	rows := page["rows"].([]any)
	require.Len(t, rows, 3)
	kinds := make([]string, 0, 6)
	for _, row := range rows {
		for _, tile := range row.([]any) {
			w := tile.(map[string]any)["widget"].(map[string]any)
			kinds = append(kinds, w["kind"].(string))
		}
	}
	assert.Equal(t, []string{"progressBar", "circularGauge", "starRating", "lineSeries", "funnel", "placeholder"}, kinds)

	gauge := rows[0].([]any)[1].(map[string]any)["widget"].(map[string]any)
	assert.Equal(t, "yellow", gauge["color"])
	assert.Equal(t, "70%", gauge["display"])
}

func TestJSONFormatter_EmptyPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(emptyPage(), &buf))
	got := decodeJSON(t, buf.Bytes())

	meta := got["metadata"].(map[string]any)
	assert.EqualValues(t, 0, meta["tiles"])
	assert.Equal(t, []any{}, meta["errors"], "errors is an empty array, never null")
	assert.Equal(t, []any{}, got["page"].(map[string]any)["rows"])
}

func TestJSONFormatter_NowFunc(t *testing.T) {
	f := &JSONFormatter{nowFunc: func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("WIB", 7*3600)) }}
	var buf bytes.Buffer
	require.NoError(t, f.Format(testPage(t), &buf))
	meta := decodeJSON(t, buf.Bytes())["metadata"].(map[string]any)
	assert.Equal(t, "2026-01-01T20:04:05Z", meta["generated_at"])
}

func TestJSONFormatter_CompactAndPretty(t *testing.T) {
	page := testPage(t)

	var pretty bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(page, &pretty))
	assert.Contains(t, pretty.String(), "\n  \"page\": {")

	var compact bytes.Buffer
	require.NoError(t, (&JSONFormatter{Compact: true}).Format(page, &compact))
	assert.Equal(t, 1, strings.Count(compact.String(), "\n"), "single line plus trailing newline")
	assert.True(t, strings.HasSuffix(compact.String(), "}\n"))
}

func TestJSONFormatter_CompactForFiles(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "page-*.json")
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // test cleanup

	assert.True(t, NewJSONFormatter().shouldCompact(f))
	assert.False(t, NewJSONFormatter().shouldCompact(&bytes.Buffer{}))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestJSONFormatter_WriteError(t *testing.T) {
	err := NewJSONFormatter().Format(testPage(t), failWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write json: disk full")
}

func TestNewEnvelope_SharesPage(t *testing.T) {
	page := testPage(t)
	env := NewEnvelope(page)
	assert.Same(t, page, env.Page)
	assert.Equal(t, 6, env.Metadata.Tiles)
	require.Len(t, env.Metadata.Errors, 1)
	assert.Equal(t, "not_found", env.Metadata.Errors[0].Class)
}

func TestJSONLFormatter_OneLinePerTile(t *testing.T) {
	assert.Equal(t, "jsonl", NewJSONLFormatter().Name())

	page := testPage(t)
	var buf bytes.Buffer
	require.NoError(t, NewJSONLFormatter().Format(page, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	first := decodeJSON(t, []byte(lines[0]))
	assert.Equal(t, page.ID, first["page_id"])
	assert.Equal(t, "2025-06", first["period"])
	assert.Equal(t, "Revenue", first["metric"])
	assert.Equal(t, "progressBar", first["kind"])
	assert.Equal(t, "Rp 20,000,000", first["display"])
	assert.Equal(t, "Rp 100,000,000", first["target"])
	assert.Equal(t, "+12%", first["change"])
	assert.Equal(t, "ok", first["status"])
	assert.NotContains(t, first, "error")

	funnel := decodeJSON(t, []byte(lines[4]))
	assert.Equal(t, "WARN", funnel["status"])
	assert.EqualValues(t, 10, funnel["value"])

	last := decodeJSON(t, []byte(lines[5]))
	assert.Equal(t, "ERROR", last["status"])
	assert.Equal(t, "not_found", last["class"])
	assert.Equal(t, `metric "Ghost" not found`, last["error"])
}

func TestJSONLFormatter_EmptyPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONLFormatter().Format(emptyPage(), &buf))
	assert.Empty(t, buf.String())
}
