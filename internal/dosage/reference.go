package dosage

import "aromadose/models"

// DefaultUF is the base uncertainty factor applied to every computation.
const DefaultUF = 100.0

// referenceNOAEL maps lowercase constituent names to NOAEL values in
// mg/kg/day, drawn from published toxicological studies.
var referenceNOAEL = map[string]float64{
	"eugénol":        450.0,
	"cinnamaldéhyde": 220.0,
	"1,8-cinéole":    500.0,
	"menthol":        200.0,
	"citral":         100.0,
	"linalool":       500.0,
	"limonène":       600.0,
	"α-pinène":       650.0,
	"β-pinène":       600.0,
	"camphre":        300.0,
	"menthone":       400.0,
	"pulegone":       20.0,
	"menthofurane":   15.0,
	"thuyone":        10.0,
	"estragole":      50.0,
	"anéthole":       300.0,
	"géraniol":       400.0,
	"nérol":          400.0,
}

// ifraLimits maps lowercase constituent names to the maximum percentage
// allowed in finished product under the IFRA standards.
var ifraLimits = map[string]float64{
	"cinnamaldéhyde": 0.05,
	"eugénol":        0.5,
	"citral":         0.6,
	"linalool":       2.0,
	"isoeugénol":     0.02,
}

// cirLimits maps lowercase constituent names to CIR safety-assessment
// percentage limits.
var cirLimits = map[string]float64{
	"menthol": 5.4,
}

// bioavailability is the per-route systemic absorption fraction.
var bioavailability = map[models.AdministrationRoute]float64{
	models.RouteTopical:    1.0,
	models.RouteOral:       0.9,
	models.RouteInhalation: 0.8,
}

// familyDurationLimits caps the recommended treatment duration (days) per
// dominant biochemical family. Families not listed default to 14 days.
var familyDurationLimits = map[models.BiochemicalFamily]int{
	models.FamilyPhenols:                  10,
	models.FamilyKetonesToxic:             7,
	models.FamilyAldehydesAromatic:        14,
	models.FamilyFurocoumarins:            14,
	models.FamilyMonoterpenesHydrocarbons: 21,
	models.FamilyMonoterpenols:            21,
}

// familyAdditionalUF holds the extra uncertainty multiplier applied when the
// dominant family carries class-level toxicity concerns.
var familyAdditionalUF = map[models.BiochemicalFamily]float64{
	models.FamilyKetonesToxic:      3.0,
	models.FamilyPhenols:           2.0,
	models.FamilyAldehydesAromatic: 2.0,
	models.FamilyFurocoumarins:     5.0,
}

const defaultDurationDays = 14

// Reference is the read-only seed dataset exposed for display and
// documentation purposes.
type Reference struct {
	NOAEL           map[string]float64                     `json:"noael_reference"`
	IFRALimits      map[string]float64                     `json:"ifra_limits"`
	CIRLimits       map[string]float64                     `json:"cir_limits"`
	Bioavailability map[models.AdministrationRoute]float64 `json:"bioavailability"`
	FamilyDurations map[models.BiochemicalFamily]int       `json:"family_duration_limits"`
	FamilyUF        map[models.BiochemicalFamily]float64   `json:"family_additional_uf"`
	DefaultUF       float64                                `json:"default_uf"`
}

// ReferenceData returns a copy of the static toxicological reference tables.
// Mutating the result does not affect the calculator.
func ReferenceData() Reference {
	return Reference{
		NOAEL:           copyStringMap(referenceNOAEL),
		IFRALimits:      copyStringMap(ifraLimits),
		CIRLimits:       copyStringMap(cirLimits),
		Bioavailability: copyRouteMap(bioavailability),
		FamilyDurations: copyFamilyIntMap(familyDurationLimits),
		FamilyUF:        copyFamilyMap(familyAdditionalUF),
		DefaultUF:       DefaultUF,
	}
}

func copyStringMap(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyRouteMap(src map[models.AdministrationRoute]float64) map[models.AdministrationRoute]float64 {
	dst := make(map[models.AdministrationRoute]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyFamilyMap(src map[models.BiochemicalFamily]float64) map[models.BiochemicalFamily]float64 {
	dst := make(map[models.BiochemicalFamily]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyFamilyIntMap(src map[models.BiochemicalFamily]int) map[models.BiochemicalFamily]int {
	dst := make(map[models.BiochemicalFamily]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
