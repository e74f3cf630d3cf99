package dosage

import (
	"strings"

	"aromadose/models"
)

// ReasonInfant is the universal exclusion reason for children under 30 months.
const ReasonInfant = "Âge < 30 mois"

// checkContraindications evaluates the absolute and relative exclusion rules
// over the individual, oil and application. Every applicable rule fires, with
// one exception: the infant rule is universal and short-circuits the whole
// evaluation. The returned stop flag is set only for that rule; any other
// absolute contraindication is reported prominently but still allows the dose
// computation to run.
func checkContraindications(individual models.Individual, oil models.EssentialOil, application models.Application) ([]models.Contraindication, bool) {
	if individual.AgeCategory == models.AgeInfant {
		return []models.Contraindication{{
			Type:           models.ContraindicationAbsolute,
			Reason:         ReasonInfant,
			Recommendation: "Contre-indiqué pour toutes les huiles essentielles",
		}}, true
	}

	var contraindications []models.Contraindication
	add := func(kind, reason, recommendation string) {
		contraindications = append(contraindications, models.Contraindication{
			Type:           kind,
			Reason:         reason,
			Recommendation: recommendation,
		})
	}

	if oil.DominantFamily == models.FamilyPhenols {
		if individual.AgeCategory.IsChild() {
			add(models.ContraindicationAbsolute,
				"HE phénoliques chez l'enfant",
				"Éviter les HE riches en phénols chez les enfants")
		}
		if individual.PhysiologicalState == models.StatePregnancy || individual.PhysiologicalState == models.StateBreastfeeding {
			add(models.ContraindicationRelative,
				"HE phénoliques et grossesse/allaitement",
				"Éviter les phénols à forte dose pendant la grossesse")
		}
	}

	if oil.DominantFamily == models.FamilyAldehydesAromatic && individual.AgeCategory.IsChild() {
		add(models.ContraindicationAbsolute,
			"HE aldéhydiques chez l'enfant",
			"Éviter les aldéhydes aromatiques chez les enfants")
	}

	if oil.DominantFamily.IsKetone() {
		if individual.PhysiologicalState == models.StatePregnancy {
			add(models.ContraindicationAbsolute,
				"Cétones et grossesse",
				"Éviter les cétones (pulegone, menthofurane, thuyone, camphre) pendant la grossesse")
		}
		if individual.HasPathology(models.PathologyEpilepsy) {
			add(models.ContraindicationAbsolute,
				"Cétones et épilepsie",
				"Éviter les cétones chez les patients épileptiques")
		}
	}

	if application.Route == models.RouteOral && individual.AgeCategory.IsChild() {
		add(models.ContraindicationAbsolute,
			"Voie orale chez l'enfant",
			"Voie orale contre-indiquée chez les enfants sauf spécialités validées")
	}

	if individual.HasTreatment("anticoagulants") || individual.HasTreatment("antiagrégants") {
		for _, constituent := range oil.Constituents {
			if strings.ToLower(constituent.Name) == "eugénol" {
				add(models.ContraindicationRelative,
					"Eugénol et anticoagulants",
					"Prudence avec eugénol chez patients sous anticoagulants (effet anti-plaquettaire)")
				break
			}
		}
	}

	return contraindications, false
}
