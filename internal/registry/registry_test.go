// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mars303004/kpiboard/internal/metric"
)

func testRecords() []metric.Record {
	return []metric.Record{
		{Name: "Revenue", Value: metric.Scalar(20_000_000), Target: metric.Float(100_000_000), ChangePercent: metric.Float(12), Unit: metric.UnitCurrency},
		{Name: "Product NPS", Value: metric.Scalar(70), Target: metric.Float(90), Unit: metric.UnitPercent},
		{Name: "Deployment Success Rate", Value: metric.Series(80, 82, 81, 83, 84, 85, 86, 85, 84, 83, 82, 81), Unit: metric.UnitPercent},
	}
}

func TestNew_PreservesOrder(t *testing.T) {
	reg, err := New(testRecords())
	require.NoError(t, err)

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"Revenue", "Product NPS", "Deployment Success Rate"}, reg.Names())

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Revenue", all[0].Name)
	assert.Equal(t, "Deployment Success Rate", all[2].Name)
}

func TestNew_RejectsDuplicates(t *testing.T) {
	recs := append(testRecords(), metric.Record{Name: "Revenue", Value: metric.Scalar(1), Unit: metric.UnitCurrency})
	_, err := New(recs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `metric "Revenue": duplicate name`)
}

func TestNew_ReportsAllInvalidRecords(t *testing.T) {
	recs := []metric.Record{
		{Name: "NoValue", Unit: metric.UnitPercent},
		{Name: "NegTarget", Value: metric.Scalar(1), Target: metric.Float(-5), Unit: metric.UnitPercent},
		{Name: "EmptySeries", Value: metric.Series(), Unit: metric.UnitPercent},
	}
	_, err := New(recs)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "NoValue")
	assert.Contains(t, msg, "NegTarget")
	assert.Contains(t, msg, "EmptySeries")
}

func TestGet(t *testing.T) {
	reg, err := New(testRecords())
	require.NoError(t, err)

	rec, err := reg.Get("Product NPS")
	require.NoError(t, err)
	assert.Equal(t, 70.0, rec.Value.Current())
}

func TestGet_NotFound(t *testing.T) {
	reg, err := New(testRecords())
	require.NoError(t, err)

	_, err = reg.Get("Gross Margin")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Gross Margin", nf.Name)
	assert.Equal(t, `metric "Gross Margin" not found`, err.Error())
}

func TestLookup_CaseInsensitive(t *testing.T) {
	reg, err := New(testRecords())
	require.NoError(t, err)

	rec, err := reg.Lookup("  product nps ")
	require.NoError(t, err)
	assert.Equal(t, "Product NPS", rec.Name)

	_, err = reg.Lookup("nps")
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestRegistry_IsImmutable(t *testing.T) {
	recs := testRecords()
	reg, err := New(recs)
	require.NoError(t, err)

	// Mutating the input after construction must not leak in.
	*recs[0].Target = 1

	got, err := reg.Get("Revenue")
	require.NoError(t, err)
	assert.Equal(t, 100_000_000.0, *got.Target)

	// Mutating a returned record must not leak in either.
	*got.Target = 2
	again, _ := reg.Get("Revenue")
	assert.Equal(t, 100_000_000.0, *again.Target)

	all := reg.All()
	*all[0].ChangePercent = 99
	again, _ = reg.Get("Revenue")
	assert.Equal(t, 12.0, *again.ChangePercent)
}

type failingSource struct{ err error }

func (f failingSource) Metrics(context.Context) ([]metric.Record, error) { return nil, f.err }

func TestLoad(t *testing.T) {
	reg, err := Load(context.Background(), NewStaticSource(testRecords()))
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Len())
}

func TestLoad_SourceError(t *testing.T) {
	boom := errors.New("warehouse unavailable")
	_, err := Load(context.Background(), failingSource{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "load metrics")
}

func TestLoad_InvalidRecordFailsWholeLoad(t *testing.T) {
	recs := append(testRecords(), metric.Record{Name: "Broken", Unit: metric.UnitPercent})
	reg, err := Load(context.Background(), NewStaticSource(recs))
	require.Error(t, err)
	assert.Nil(t, reg)
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, NewStaticSource(testRecords()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStaticSource_ReturnsFreshCopies(t *testing.T) {
	src := NewStaticSource(testRecords())
	first, err := src.Metrics(context.Background())
	require.NoError(t, err)
	*first[0].Target = 0

	second, err := src.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100_000_000.0, *second[0].Target)
}

func TestSampleSource_Deterministic(t *testing.T) {
	base := NewStaticSource(testRecords())
	a, err := NewSampleSource(base, 42).Metrics(context.Background())
	require.NoError(t, err)
	b, err := NewSampleSource(base, 42).Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewSampleSource(base, 7).Metrics(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a[0].Value.Current(), c[0].Value.Current())
}

func TestSampleSource_KeepsShapeAndBounds(t *testing.T) {
	recs := append(testRecords(),
		metric.Record{Name: "Funnel", Value: metric.Series(100, 70, 40, 25, 20), Unit: metric.UnitCount},
		metric.Record{Name: "CSAT", Value: metric.Scalar(4.9), Unit: metric.UnitScore},
		metric.Record{Name: "SLA", Value: metric.Scalar(99), Unit: metric.UnitPercent},
	)
	base := NewStaticSource(recs)

	for seed := uint64(0); seed < 50; seed++ {
		out, err := NewSampleSource(base, seed).Metrics(context.Background())
		require.NoError(t, err)

		reg, err := New(out)
		require.NoError(t, err, "sampled records must stay valid")

		rev, _ := reg.Get("Revenue")
		assert.InDelta(t, 20_000_000, rev.Value.Current(), 2_000_001)
		require.NotNil(t, rev.ChangePercent)
		assert.GreaterOrEqual(t, *rev.ChangePercent, -15.0)
		assert.LessOrEqual(t, *rev.ChangePercent, 15.0)
		assert.Equal(t, 100_000_000.0, *rev.Target, "targets are not sampled")

		dep, _ := reg.Get("Deployment Success Rate")
		assert.Equal(t, 12, dep.Value.Len())

		funnel, _ := reg.Get("Funnel")
		pts := funnel.Value.Points()
		for i := 1; i < len(pts); i++ {
			assert.LessOrEqual(t, pts[i], pts[i-1], "seed %d stage %d", seed, i)
		}

		csat, _ := reg.Get("CSAT")
		assert.LessOrEqual(t, csat.Value.Current(), 5.0)

		sla, _ := reg.Get("SLA")
		assert.LessOrEqual(t, sla.Value.Current(), 100.0)

		nps, _ := reg.Get("Product NPS")
		assert.Nil(t, nps.ChangePercent, "absent change stays absent")
	}
}
