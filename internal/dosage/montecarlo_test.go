package dosage

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

func TestMonteCarloEstimateStatistics(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	result := monteCarloEstimate(rng, 100.0)

	// The three noise terms are centred on 1.0, so the mean stays near the
	// nominal dose.
	if result.Mean < 85 || result.Mean > 115 {
		t.Fatalf("mean = %v, expected close to the nominal 100", result.Mean)
	}
	if result.Std <= 0 {
		t.Fatalf("std = %v, expected strictly positive spread", result.Std)
	}
	if !(result.P5 < result.Mean && result.Mean < result.P95) {
		t.Fatalf("expected p5 < mean < p95, got p5=%v mean=%v p95=%v", result.P5, result.Mean, result.P95)
	}
	if !strings.HasPrefix(result.ConfidenceInterval, "IC95%: [") {
		t.Fatalf("unexpected confidence interval label: %q", result.ConfidenceInterval)
	}

	// Noise factors are clamped, so the extremes are bounded too.
	if result.P5 < 100*0.5*0.8*0.8 || result.P95 > 100*1.5*1.2*1.2 {
		t.Fatalf("percentiles escaped the clamped noise bounds: p5=%v p95=%v", result.P5, result.P95)
	}
}

func TestMonteCarloEstimateRepeatable(t *testing.T) {
	t.Parallel()

	first := monteCarloEstimate(rand.New(rand.NewSource(42)), 50.0)
	second := monteCarloEstimate(rand.New(rand.NewSource(42)), 50.0)

	if first != second {
		t.Fatalf("same seed must reproduce the same result: %+v vs %+v", first, second)
	}
}

func TestMonteCarloEstimateDegrades(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for _, nominal := range []float64{0, -5, math.Inf(1), math.NaN()} {
		result := monteCarloEstimate(rng, nominal)
		if result.ConfidenceInterval != "Simulation échouée" {
			t.Fatalf("nominal %v should degrade to a failed simulation, got %+v", nominal, result)
		}
		if result.Mean != 0 || result.Std != 0 || result.P5 != 0 || result.P95 != 0 {
			t.Fatalf("failed simulation must zero all statistics, got %+v", result)
		}
	}
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	sorted := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{50, 3},
		{100, 5},
		{25, 2},
		{12.5, 1.5},
	}
	for _, tc := range tests {
		if got := percentile(sorted, tc.q); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("percentile(%v) = %v, want %v", tc.q, got, tc.want)
		}
	}

	if got := percentile(nil, 50); got != 0 {
		t.Fatalf("empty sample should yield zero, got %v", got)
	}
	if got := percentile([]float64{7}, 95); got != 7 {
		t.Fatalf("single sample should yield itself, got %v", got)
	}
}
