package dosage

import (
	"fmt"
	"sort"

	"aromadose/models"
)

// aggregateMultiProduct sums the day's systemic exposure per constituent
// across every declared product and reports how much of each constituent's
// AEL budget the combined exposure consumes. Constituents without reference
// toxicology are ignored. The aggregation is informational and never fatal:
// exceeded budgets surface as warnings and percentages land in the
// calculation details.
func aggregateMultiProduct(exposure *models.MultiProductExposure, individual models.Individual, uf float64) (map[string]float64, []string) {
	if exposure == nil || len(exposure.Products) == 0 || individual.BodyWeight <= 0 {
		return nil, nil
	}

	totalSED := make(map[string]float64)
	for _, product := range exposure.Products {
		for name, massMG := range product {
			if massMG <= 0 {
				continue
			}
			totalSED[name] += massMG / individual.BodyWeight
		}
	}

	budgets := make(map[string]float64)
	var warnings []string

	names := make([]string, 0, len(totalSED))
	for name := range totalSED {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ael, err := acceptableExposureLevel(models.Constituent{Name: name}, uf)
		if err != nil || ael <= 0 {
			continue
		}
		consumed := totalSED[name] / ael * 100
		budgets[name] = consumed
		if consumed > 100 {
			warnings = append(warnings, fmt.Sprintf("Budget AEL dépassé pour %s: %.1f%% de l'exposition journalière admissible", name, consumed))
		}
	}

	return budgets, warnings
}
