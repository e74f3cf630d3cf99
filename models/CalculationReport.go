package models

// ConstituentAnalysis is the per-constituent exposure breakdown at the
// recommended concentration.
type ConstituentAnalysis struct {
	SED            float64 `json:"sed"`
	AEL            float64 `json:"ael"`
	Ratio          float64 `json:"ratio"`
	BudgetConsumed float64 `json:"budget_consumed"`
}

// CalculationReport is the full response for one dose calculation.
type CalculationReport struct {
	ReportID             string                         `json:"report_id"`
	DoseRecommendation   DoseRecommendation             `json:"dose_recommendation"`
	Contraindications    []Contraindication             `json:"contraindications"`
	Warnings             []string                       `json:"warnings"`
	MaxDurationDays      int                            `json:"max_duration_days"`
	UncertaintyFactors   map[string]float64             `json:"uncertainty_factors_applied"`
	CalculationDetails   map[string]float64             `json:"calculation_details"`
	ConstituentAnalysis  map[string]ConstituentAnalysis `json:"constituent_analysis,omitempty"`
	FamilyDurationLimits map[BiochemicalFamily]int      `json:"family_duration_limits,omitempty"`
	WhyThisLimit         string                         `json:"why_this_limit,omitempty"`
	CalculationTimestamp string                         `json:"calculation_timestamp,omitempty"`
	CalculatorVersion    string                         `json:"calculator_version"`
	References           []string                       `json:"references,omitempty"`
}
