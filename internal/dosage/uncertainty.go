package dosage

import (
	"fmt"

	"aromadose/models"
)

// uncertaintyFactor derives the total multiplicative safety divisor for the
// individual and application, plus a named breakdown of every multiplier
// applied. The dominant family is an explicit parameter so the same inputs
// always produce the same factor. The breakdown always contains the "base"
// entry.
func uncertaintyFactor(individual models.Individual, application models.Application, family models.BiochemicalFamily) (float64, map[string]float64) {
	uf := DefaultUF
	applied := map[string]float64{"base": DefaultUF}

	switch {
	case individual.AgeCategory == models.AgeInfant:
		uf *= 10
		applied["infant"] = 10.0
	case individual.AgeCategory.IsChild():
		uf *= 3
		applied["child"] = 3.0
	case individual.AgeCategory == models.AgeElderly:
		uf *= 2
		applied["elderly"] = 2.0
	}

	if individual.HasPathology(models.PathologyHepatic) {
		uf *= 3
		applied["hepatic"] = 3.0
	}
	if individual.HasPathology(models.PathologyRenal) {
		uf *= 2
		applied["renal"] = 2.0
	}
	if individual.HasPathology(models.PathologyG6PD) {
		uf *= 5
		applied["g6pd"] = 5.0
	}

	if individual.PhysiologicalState == models.StatePregnancy || individual.PhysiologicalState == models.StateBreastfeeding {
		uf *= 3
		applied["pregnancy_breastfeeding"] = 3.0
	}

	if application.DurationDays > 14 {
		uf *= 1.5
		applied["long_duration"] = 1.5
	}

	if familyUF, ok := familyAdditionalUF[family]; ok {
		uf *= familyUF
		applied[fmt.Sprintf("family_%s", family)] = familyUF
	}

	return uf, applied
}
