// Package dosage implements the essential-oil dose safety engine: formula
// blending, uncertainty-factor derivation, systemic (AEL/SED) and local
// (IFRA/CIR) concentration limits, contraindication rules and the Monte Carlo
// confidence band. The engine is pure computation over in-memory values; all
// I/O lives with the caller.
package dosage

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"aromadose/models"
)

const (
	calculatorVersion = "2.0"
	safetyFactor      = 0.5
	childDurationCap  = 7
)

var literatureReferences = []string{
	"IFRA Standards 49th Amendment (2020)",
	"SCCS Notes of Guidance (2021)",
	"Tisserand & Young - Essential Oil Safety 2nd Ed.",
}

// Calculator computes dose recommendations. All per-request scratch state
// lives on the call stack, so a single Calculator is safe for concurrent use;
// only the Monte Carlo random source is guarded by a mutex.
type Calculator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New returns a Calculator with a time-seeded random source.
func New() *Calculator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Calculator whose Monte Carlo sampling is deterministic
// for the given seed.
func NewSeeded(seed int64) *Calculator {
	return &Calculator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// Calculate runs the full dosage pipeline for one request. It returns an
// error only for malformed input (missing or inconsistent oil/formula);
// domain-level computation failures degrade to a zero-dose report with the
// failure recorded in the warnings.
func (c *Calculator) Calculate(request models.CalculationRequest) (models.CalculationReport, error) {
	if request.Individual.BodyWeight <= 0 {
		return models.CalculationReport{}, fmt.Errorf("%w: le poids corporel doit être strictement positif", ErrInvalidInput)
	}
	if request.Application.DailyAmount <= 0 {
		return models.CalculationReport{}, fmt.Errorf("%w: la quantité journalière doit être strictement positive", ErrInvalidInput)
	}

	oil, err := requestOil(request)
	if err != nil {
		return models.CalculationReport{}, err
	}

	family := oil.DominantFamily
	contraindications, stop := checkContraindications(request.Individual, oil, request.Application)
	if stop {
		return c.zeroReport(LimitingFactorContraindication, contraindications, nil, map[string]float64{}), nil
	}

	uf, breakdown := uncertaintyFactor(request.Individual, request.Application, family)

	systemic, warnings, err := maxConcentrationSystemic(oil, request.Individual, request.Application, uf)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Erreur de calcul: %v", err))
		return c.zeroReport(LimitingFactorError, contraindications, warnings, breakdown), nil
	}

	local := maxConcentrationLocal(oil)

	binding := systemic
	if local.concentration < systemic.concentration {
		binding = local
	}

	maxDoseMG := request.Application.DailyAmount * binding.concentration
	finalDoseMG := maxDoseMG * safetyFactor
	finalConcentration := binding.concentration * safetyFactor
	marginPercentage := (maxDoseMG - finalDoseMG) / maxDoseMG * 100

	maxDuration := durationLimit(family, request.Individual)

	analysis := c.analyseConstituents(oil, request.Individual, request.Application, uf, finalConcentration)

	sedAELRatio := 0.0
	if entry, ok := analysis[binding.constituent]; ok {
		sedAELRatio = entry.Ratio
	}

	doseDropsPerKG := finalDoseMG / oil.EffectiveDropWeightMG() / request.Individual.BodyWeight

	c.mu.Lock()
	monteCarlo := monteCarloEstimate(c.rng, maxDoseMG*exploratorySafetyScalar)
	c.mu.Unlock()

	details := map[string]float64{
		"uf_total":                   uf,
		"max_concentration_systemic": systemic.concentration,
		"max_dose_he_mg":             maxDoseMG,
		"safety_factor_applied":      safetyFactor,
	}
	if !math.IsInf(local.concentration, 1) {
		details["max_concentration_local"] = local.concentration
	}
	if request.Application.Route == models.RouteInhalation {
		details["air_concentration_mg_m3"] = inhalationAirConcentration(request.Application, oil)
	}

	if budgets, budgetWarnings := aggregateMultiProduct(request.MultiProductExposure, request.Individual, uf); len(budgets) > 0 || len(budgetWarnings) > 0 {
		for name, consumed := range budgets {
			details["budget_multi_produits_"+name] = consumed
		}
		warnings = append(warnings, budgetWarnings...)
	}

	report := models.CalculationReport{
		ReportID: uuid.NewString(),
		DoseRecommendation: models.DoseRecommendation{
			FinalDoseMG:             finalDoseMG,
			ConcentrationPercentage: finalConcentration * 100,
			MinDoseMG:               finalDoseMG * 0.5,
			MaxDoseMG:               maxDoseMG,
			SafetyMargin: models.SafetyMargin{
				AppliedFactor:    safetyFactor,
				MarginPercentage: marginPercentage,
			},
			LimitingFactor:      binding.factor,
			LimitingConstituent: binding.constituent,
			SEDAELRatio:         sedAELRatio,
			DoseDropsPerKG:      doseDropsPerKG,
			MonteCarloResult:    &monteCarlo,
			IFRACategoryApplied: "General dermal",
		},
		Contraindications:    ensureContraindications(contraindications),
		Warnings:             ensureWarnings(warnings),
		MaxDurationDays:      maxDuration,
		UncertaintyFactors:   breakdown,
		CalculationDetails:   details,
		ConstituentAnalysis:  analysis,
		FamilyDurationLimits: copyFamilyIntMap(familyDurationLimits),
		WhyThisLimit:         whyThisLimit(binding, breakdown),
		CalculationTimestamp: c.now().UTC().Format(time.RFC3339),
		CalculatorVersion:    calculatorVersion,
		References:           literatureReferences,
	}
	return report, nil
}

// requestOil resolves the single oil the computation runs against, merging a
// formula when one is supplied. Exactly one of the two inputs must be set.
func requestOil(request models.CalculationRequest) (models.EssentialOil, error) {
	switch {
	case request.Formula != nil && request.EssentialOil != nil:
		return models.EssentialOil{}, fmt.Errorf("%w: fournir soit une huile essentielle, soit une formule, pas les deux", ErrInvalidInput)
	case request.Formula != nil:
		return MergeFormula(*request.Formula)
	case request.EssentialOil != nil:
		return *request.EssentialOil, nil
	default:
		return models.EssentialOil{}, fmt.Errorf("%w: aucune huile essentielle ou formule fournie", ErrInvalidInput)
	}
}

// analyseConstituents computes SED, AEL and the consumed exposure budget for
// every constituent at the recommended concentration. Constituents without
// resolvable toxicology are left out.
func (c *Calculator) analyseConstituents(oil models.EssentialOil, individual models.Individual, application models.Application, uf, finalConcentration float64) map[string]models.ConstituentAnalysis {
	analysis := make(map[string]models.ConstituentAnalysis)
	baseBio := bioavailability[application.Route]

	for _, constituent := range oil.Constituents {
		if constituent.Fraction <= 0 {
			continue
		}
		ael, err := acceptableExposureLevel(constituent, uf)
		if err != nil {
			continue
		}

		sed := application.DailyAmount * finalConcentration * constituent.Fraction * baseBio / individual.BodyWeight
		ratio := 0.0
		if ael > 0 {
			ratio = sed / ael
		}

		analysis[constituent.Name] = models.ConstituentAnalysis{
			SED:            sed,
			AEL:            ael,
			Ratio:          ratio,
			BudgetConsumed: ratio * 100,
		}
	}
	return analysis
}

// durationLimit looks up the family duration cap and tightens it for children
// and individuals with declared pathologies.
func durationLimit(family models.BiochemicalFamily, individual models.Individual) int {
	limit, ok := familyDurationLimits[family]
	if !ok {
		limit = defaultDurationDays
	}
	if individual.AgeCategory.IsChild() || individual.HasRelevantPathology() {
		if limit > childDurationCap {
			limit = childDurationCap
		}
	}
	return limit
}

// whyThisLimit builds the human-readable justification for the binding limit.
func whyThisLimit(binding limitResult, breakdown map[string]float64) string {
	text := fmt.Sprintf("Limite appliquée: %s", binding.factor)
	if binding.constituent != "" {
		text += fmt.Sprintf(" (constituant: %s)", binding.constituent)
	}
	switch binding.factor {
	case LimitingFactorLocal:
		text += ". Les limites IFRA/CIR sont basées sur des études de sensibilisation cutanée."
	case LimitingFactorSystemic:
		total := 0.0
		for _, v := range breakdown {
			total += v
		}
		text += fmt.Sprintf(". Basé sur NOAEL et facteur d'incertitude total: %g", total)
	}
	return text
}

// zeroReport builds the degraded report shape shared by the infant
// short-circuit and caught computation failures.
func (c *Calculator) zeroReport(limitingFactor string, contraindications []models.Contraindication, warnings []string, breakdown map[string]float64) models.CalculationReport {
	return models.CalculationReport{
		ReportID: uuid.NewString(),
		DoseRecommendation: models.DoseRecommendation{
			LimitingFactor: limitingFactor,
			SafetyMargin:   models.SafetyMargin{},
		},
		Contraindications:    ensureContraindications(contraindications),
		Warnings:             ensureWarnings(warnings),
		MaxDurationDays:      0,
		UncertaintyFactors:   breakdown,
		CalculationDetails:   map[string]float64{},
		CalculationTimestamp: c.now().UTC().Format(time.RFC3339),
		CalculatorVersion:    calculatorVersion,
	}
}

func ensureWarnings(warnings []string) []string {
	if warnings == nil {
		return []string{}
	}
	return warnings
}

func ensureContraindications(contraindications []models.Contraindication) []models.Contraindication {
	if contraindications == nil {
		return []models.Contraindication{}
	}
	return contraindications
}
