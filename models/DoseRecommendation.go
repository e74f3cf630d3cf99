package models

// SafetyMargin records the exploratory safety factor applied on top of the
// binding concentration limit.
type SafetyMargin struct {
	AppliedFactor    float64 `json:"applied_factor"`
	MarginPercentage float64 `json:"margin_percentage"`
}

// DoseRecommendation is the dose outcome of one calculation.
type DoseRecommendation struct {
	FinalDoseMG             float64           `json:"final_dose_mg"`
	ConcentrationPercentage float64           `json:"concentration_percentage"`
	MinDoseMG               float64           `json:"min_dose_mg"`
	MaxDoseMG               float64           `json:"max_dose_mg"`
	SafetyMargin            SafetyMargin      `json:"safety_margin"`
	LimitingFactor          string            `json:"limiting_factor"`
	LimitingConstituent     string            `json:"limiting_constituent,omitempty"`
	SEDAELRatio             float64           `json:"sed_ael_ratio"`
	DoseDropsPerKG          float64           `json:"dose_drops_per_kg"`
	MonteCarloResult        *MonteCarloResult `json:"monte_carlo_result,omitempty"`
	IFRACategoryApplied     string            `json:"ifra_category_applied,omitempty"`
	CIRLimitApplied         string            `json:"cir_limit_applied,omitempty"`
}
