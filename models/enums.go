package models

// AgeCategory classifies an individual into the age bands used by the safety rules.
// The string values mirror the published wire contract.
type AgeCategory string

const (
	AgeInfant     AgeCategory = "< 30 mois"
	AgeChild2to6  AgeCategory = "enfant 2-6 ans"
	AgeChild6to12 AgeCategory = "enfant 6-12 ans"
	AgeAdult      AgeCategory = "adulte"
	AgeElderly    AgeCategory = "sujet âgé"
)

// IsChild reports whether the category is one of the two child bands.
func (a AgeCategory) IsChild() bool {
	return a == AgeChild2to6 || a == AgeChild6to12
}

// Sex of the individual.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// AdministrationRoute is the route by which the product is applied.
type AdministrationRoute string

const (
	RouteTopical    AdministrationRoute = "topique"
	RouteOral       AdministrationRoute = "orale"
	RouteInhalation AdministrationRoute = "inhalation"
)

// BiochemicalFamily is the dominant chemical class of an essential oil, used to
// apply class-level safety rules.
type BiochemicalFamily string

const (
	FamilyMonoterpenesHydrocarbons BiochemicalFamily = "monoterpènes hydrocarbures"
	FamilyMonoterpenols            BiochemicalFamily = "monoterpénols"
	FamilyMonoterpeneAldehydes     BiochemicalFamily = "aldéhydes monoterpéniques"
	FamilyMonoterpeneKetones       BiochemicalFamily = "cétones monoterpéniques"
	FamilyMonoterpeneEsters        BiochemicalFamily = "esters monoterpéniques"

	FamilySesquiterpenes  BiochemicalFamily = "sesquiterpènes"
	FamilySesquiterpenols BiochemicalFamily = "sesquiterpénols"

	FamilyPhenols          BiochemicalFamily = "phénols"
	FamilyPhenylpropanoids BiochemicalFamily = "phénylpropanoïdes"

	FamilyAldehydesAromatic  BiochemicalFamily = "aldéhydes aromatiques"
	FamilyAldehydesAliphatic BiochemicalFamily = "aldéhydes aliphatiques"

	FamilyKetonesSafe  BiochemicalFamily = "cétones sûres"
	FamilyKetonesToxic BiochemicalFamily = "cétones toxiques"

	FamilyOxides        BiochemicalFamily = "oxydes"
	FamilyLactones      BiochemicalFamily = "lactones"
	FamilyFurocoumarins BiochemicalFamily = "furocoumarines"
	FamilyEsters        BiochemicalFamily = "esters"
	FamilyEthers        BiochemicalFamily = "éthers"
)

// IsKetone reports whether the family is one of the ketone classes.
func (f BiochemicalFamily) IsKetone() bool {
	return f == FamilyKetonesSafe || f == FamilyKetonesToxic
}

// PhysiologicalState captures states that alter the safety reasoning.
type PhysiologicalState string

const (
	StateNormal        PhysiologicalState = "normal"
	StatePregnancy     PhysiologicalState = "grossesse"
	StateBreastfeeding PhysiologicalState = "allaitement"
)

// Pathology is a pre-existing condition relevant to essential-oil safety.
type Pathology string

const (
	PathologyNone          Pathology = "aucune"
	PathologyHepatic       Pathology = "hépatique"
	PathologyRenal         Pathology = "rénale"
	PathologyRespiratory   Pathology = "respiratoire"
	PathologyNeurological  Pathology = "neurologique"
	PathologyHematological Pathology = "hématologique"
	PathologyG6PD          Pathology = "G6PD"
	PathologyAsthma        Pathology = "asthme"
	PathologyEpilepsy      Pathology = "épilepsie"
)
