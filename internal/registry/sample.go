// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/Mars303004/kpiboard/internal/metric"
)

// SampleSource perturbs a base source with seeded pseudo-random noise so the
// dashboard can be demonstrated with changing numbers. Output is
// deterministic for a given seed.
type SampleSource struct {
	base Source
	seed uint64
}

// NewSampleSource wraps base. Each call to Metrics draws from a generator
// seeded with seed, so repeated passes with the same seed agree.
func NewSampleSource(base Source, seed uint64) *SampleSource {
	return &SampleSource{base: base, seed: seed}
}

// Metrics returns the base records with jittered values:
//   - scalars move within +/-10% (percent values stay within 0-100 and
//     star-scale scores within 0-5),
//   - series keep their length and shape with each point moved within +/-5%
//     (non-increasing series such as funnels stay non-increasing),
//   - change percentages are redrawn in [-15, 15] where present.
func (s *SampleSource) Metrics(ctx context.Context) ([]metric.Record, error) {
	records, err := s.base.Metrics(ctx)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
	for i := range records {
		records[i] = sampleRecord(rng, records[i])
	}
	return records, nil
}

func sampleRecord(rng *rand.Rand, rec metric.Record) metric.Record {
	if rec.Value.IsSeries() {
		rec.Value = metric.Series(walk(rng, rec.Value.Points(), rec.Unit)...)
	} else if !rec.Value.IsZero() {
		v := rec.Value.Current()
		rec.Value = metric.Scalar(clamp(jitter(rng, v, 0.10), ceiling(rec.Unit, v)))
	}
	if rec.ChangePercent != nil {
		rec.ChangePercent = metric.Float(math.Round((rng.Float64()*30-15)*10) / 10)
	}
	return rec
}

func jitter(rng *rand.Rand, v, spread float64) float64 {
	return v * (1 + (rng.Float64()*2-1)*spread)
}

func walk(rng *rand.Rand, points []float64, unit metric.Unit) []float64 {
	if len(points) == 0 {
		return points
	}
	decreasing := isNonIncreasing(points)
	hi := ceiling(unit, slices.Max(points))
	out := make([]float64, len(points))
	out[0] = clamp(jitter(rng, points[0], 0.05), hi)
	for i := 1; i < len(points); i++ {
		step := jitter(rng, points[i], 0.05)
		if decreasing && step > out[i-1] {
			step = out[i-1]
		}
		out[i] = clamp(step, hi)
	}
	for i := range out {
		out[i] = math.Round(out[i]*100) / 100
	}
	return out
}

func isNonIncreasing(points []float64) bool {
	if len(points) < 3 {
		return false
	}
	for i := 1; i < len(points); i++ {
		if points[i] > points[i-1] {
			return false
		}
	}
	return true
}

// ceiling returns the largest sensible value for unit given a base value.
func ceiling(unit metric.Unit, base float64) float64 {
	switch {
	case unit == metric.UnitPercent:
		return 100
	case unit == metric.UnitScore && base <= 5:
		return 5
	default:
		return math.Inf(1)
	}
}

func clamp(v, hi float64) float64 {
	return math.Min(hi, math.Max(0, v))
}
