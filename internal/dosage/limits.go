package dosage

import (
	"fmt"
	"math"
	"strings"

	"aromadose/models"
)

// Limiting-factor labels reported back to the caller.
const (
	LimitingFactorSystemic         = "systémique (AEL/SED)"
	LimitingFactorLocal            = "limite locale (IFRA/CIR)"
	LimitingFactorNone             = "aucune limite locale"
	LimitingFactorContraindication = "contre-indication absolue"
	LimitingFactorError            = "erreur de calcul"
)

// limitResult is the outcome of one concentration-limit sub-computation.
type limitResult struct {
	concentration float64
	factor        string
	constituent   string
}

// resolveNOAEL returns the NOAEL for a constituent, preferring its explicit
// value over the reference table. The lookup is by lowercase name.
func resolveNOAEL(c models.Constituent) (float64, error) {
	if c.NOAEL != nil {
		return *c.NOAEL, nil
	}
	if noael, ok := referenceNOAEL[strings.ToLower(c.Name)]; ok {
		return noael, nil
	}
	return 0, fmt.Errorf("%w pour %s", ErrMissingToxicologyData, c.Name)
}

// acceptableExposureLevel computes the AEL (mg/kg/day) for a constituent under
// the given total uncertainty factor.
func acceptableExposureLevel(c models.Constituent, uf float64) (float64, error) {
	noael, err := resolveNOAEL(c)
	if err != nil {
		return 0, err
	}
	return noael / uf, nil
}

// effectiveBioavailability returns the per-route absorption fraction, adjusted
// for topical occlusion and damaged skin. The occlusion multiplier is clamped
// to [1.0, 3.0] with 1.5 as the fallback when unset or below 1.
func effectiveBioavailability(application models.Application) float64 {
	bio := bioavailability[application.Route]
	if application.Route != models.RouteTopical {
		return bio
	}
	if application.Occlusion {
		factor := application.OcclusionFactor
		if factor < 1.0 {
			factor = 1.5
		}
		bio *= math.Min(3.0, math.Max(1.0, factor))
	}
	if application.DamagedSkin {
		bio *= 2.0
	}
	return bio
}

// maxConcentrationSystemic computes the highest product concentration that
// keeps every constituent's systemic exposure below its AEL under the given
// total uncertainty factor. Constituents with no resolvable NOAEL are skipped
// and reported in the returned warnings; when none resolve the computation
// fails with ErrNoApplicableLimit.
func maxConcentrationSystemic(oil models.EssentialOil, individual models.Individual, application models.Application, uf float64) (limitResult, []string, error) {
	bio := effectiveBioavailability(application)

	var warnings []string
	best := limitResult{concentration: math.Inf(1), factor: LimitingFactorSystemic}
	found := false

	for _, constituent := range oil.Constituents {
		if constituent.Fraction <= 0 {
			continue
		}

		ael, err := acceptableExposureLevel(constituent, uf)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}

		// Solve daily_amount * C * fraction * bio = AEL * body_weight for C.
		maxConc := (ael * individual.BodyWeight) / (application.DailyAmount * constituent.Fraction * bio)
		if !found || maxConc < best.concentration {
			best.concentration = maxConc
			best.constituent = constituent.Name
			found = true
		}
	}

	if !found {
		return limitResult{}, warnings, ErrNoApplicableLimit
	}
	return best, warnings, nil
}

// maxConcentrationLocal computes the highest product concentration that keeps
// every constituent below its IFRA and CIR finished-product limits. When no
// constituent carries a local limit the result is unbounded (+Inf) and never
// binding.
func maxConcentrationLocal(oil models.EssentialOil) limitResult {
	best := limitResult{concentration: math.Inf(1), factor: LimitingFactorNone}
	found := false

	consider := func(limit, fraction float64, constituent string) {
		maxConc := limit / 100 / fraction
		if !found || maxConc < best.concentration {
			best.concentration = maxConc
			best.constituent = constituent
			found = true
		}
	}

	for _, constituent := range oil.Constituents {
		if constituent.Fraction <= 0 {
			continue
		}

		if ifra, ok := localLimit(constituent.IFRALimit, ifraLimits, constituent.Name); ok {
			consider(ifra, constituent.Fraction, constituent.Name)
		}
		if cir, ok := localLimit(constituent.CIRLimit, cirLimits, constituent.Name); ok {
			consider(cir, constituent.Fraction, constituent.Name)
		}
	}

	if found {
		best.factor = LimitingFactorLocal
	} else {
		best.constituent = ""
	}
	return best
}

// localLimit resolves a finished-product percentage limit, preferring the
// constituent's explicit value over the reference table.
func localLimit(explicit *float64, table map[string]float64, name string) (float64, bool) {
	if explicit != nil {
		return *explicit, true
	}
	if limit, ok := table[strings.ToLower(name)]; ok {
		return limit, true
	}
	return 0, false
}
