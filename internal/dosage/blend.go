package dosage

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"aromadose/models"
)

const percentageTolerance = 0.1

// MergeFormula folds a multi-oil formula into one equivalent oil. Constituent
// fractions are scaled by each oil's weight and accumulated by name; on
// collision the most conservative (lowest) NOAEL, IFRA and CIR limits win. The
// dominant family of the merged oil is the family with the greatest
// accumulated weight, ties broken by first appearance. The merged oil carries
// no drop weight of its own.
func MergeFormula(formula models.Formula) (models.EssentialOil, error) {
	if len(formula.EssentialOils) == 0 {
		return models.EssentialOil{}, fmt.Errorf("%w: aucune huile essentielle dans la formule", ErrInvalidInput)
	}

	total := formula.TotalPercentage()
	if math.Abs(total-100.0) > percentageTolerance {
		return models.EssentialOil{}, fmt.Errorf("%w: les pourcentages ne totalisent pas 100%% (actuel: %s%%)", ErrInvalidInput, formatPercentage(total))
	}

	merged := make(map[string]*models.Constituent)
	var order []string
	var nameParts []string
	familyWeights := make(map[models.BiochemicalFamily]float64)
	var familyOrder []models.BiochemicalFamily

	for _, item := range formula.EssentialOils {
		oil := item.Oil
		weight := item.Percentage / 100.0
		nameParts = append(nameParts, fmt.Sprintf("%s (%s%%)", oil.Name, formatPercentage(item.Percentage)))

		if _, seen := familyWeights[oil.DominantFamily]; !seen {
			familyOrder = append(familyOrder, oil.DominantFamily)
		}
		familyWeights[oil.DominantFamily] += weight

		for _, c := range oil.Constituents {
			scaled := c.Fraction * weight
			existing, ok := merged[c.Name]
			if !ok {
				constituent := models.Constituent{
					Name:         c.Name,
					Fraction:     scaled,
					NOAEL:        copyLimit(c.NOAEL),
					IFRALimit:    copyLimit(c.IFRALimit),
					CIRLimit:     copyLimit(c.CIRLimit),
					Phototoxic:   c.Phototoxic,
					CMRStatus:    c.CMRStatus,
					AdditionalUF: c.AdditionalUF,
					SourceOil:    oil.Name,
				}
				merged[c.Name] = &constituent
				order = append(order, c.Name)
				continue
			}

			existing.Fraction += scaled
			existing.NOAEL = lowerLimit(existing.NOAEL, c.NOAEL)
			existing.IFRALimit = lowerLimit(existing.IFRALimit, c.IFRALimit)
			existing.CIRLimit = lowerLimit(existing.CIRLimit, c.CIRLimit)
		}
	}

	constituents := make([]models.Constituent, 0, len(order))
	for _, name := range order {
		constituents = append(constituents, *merged[name])
	}

	return models.EssentialOil{
		Name:           strings.Join(nameParts, " + "),
		Constituents:   constituents,
		DominantFamily: dominantFamily(familyWeights, familyOrder),
	}, nil
}

func dominantFamily(weights map[models.BiochemicalFamily]float64, order []models.BiochemicalFamily) models.BiochemicalFamily {
	var best models.BiochemicalFamily
	bestWeight := math.Inf(-1)
	for _, family := range order {
		if weights[family] > bestWeight {
			best = family
			bestWeight = weights[family]
		}
	}
	return best
}

// lowerLimit keeps the current limit unless the candidate is a strictly lower
// non-nil value.
func lowerLimit(current, candidate *float64) *float64 {
	if candidate == nil {
		return current
	}
	if current == nil || *candidate < *current {
		return copyLimit(candidate)
	}
	return current
}

func copyLimit(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func formatPercentage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
