package dosage

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"aromadose/models"
)

const (
	monteCarloSamples = 1000
	// exploratorySafetyScalar shrinks the nominal dose before perturbation so
	// the confidence band explores the region actually recommended.
	exploratorySafetyScalar = 0.6
)

var failedSimulation = models.MonteCarloResult{ConfidenceInterval: "Simulation échouée"}

// monteCarloEstimate perturbs the nominal dose with three independent
// multiplicative noise terms (bioavailability, inter-batch constituent
// variability, drop-size variability) and summarises the resulting dose
// distribution. A non-finite or non-positive nominal dose degrades to a
// zeroed result rather than failing the request.
func monteCarloEstimate(rng *rand.Rand, nominalDoseMG float64) models.MonteCarloResult {
	if math.IsInf(nominalDoseMG, 0) || math.IsNaN(nominalDoseMG) || nominalDoseMG <= 0 {
		return failedSimulation
	}

	doses := make([]float64, 0, monteCarloSamples)
	for i := 0; i < monteCarloSamples; i++ {
		bio := clampedNormal(rng, 1.0, 0.15, 0.5, 1.5)
		batch := clampedNormal(rng, 1.0, 0.10, 0.8, 1.2)
		drop := clampedNormal(rng, 1.0, 0.10, 0.8, 1.2)
		doses = append(doses, nominalDoseMG*bio*batch*drop)
	}

	mean := 0.0
	for _, d := range doses {
		mean += d
	}
	mean /= float64(len(doses))

	variance := 0.0
	for _, d := range doses {
		variance += (d - mean) * (d - mean)
	}
	std := math.Sqrt(variance / float64(len(doses)))

	sort.Float64s(doses)
	p5 := percentile(doses, 5)
	p95 := percentile(doses, 95)

	return models.MonteCarloResult{
		Mean:               mean,
		Std:                std,
		P5:                 p5,
		P95:                p95,
		ConfidenceInterval: fmt.Sprintf("IC95%%: [%.2f - %.2f] mg", p5, p95),
	}
}

func clampedNormal(rng *rand.Rand, mean, std, lo, hi float64) float64 {
	v := rng.NormFloat64()*std + mean
	return math.Max(lo, math.Min(hi, v))
}

// percentile interpolates linearly between the closest ranks of an ascending
// sorted sample.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := q / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
