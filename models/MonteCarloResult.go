package models

// MonteCarloResult summarises the biological-variability sampling around the
// recommended dose.
type MonteCarloResult struct {
	Mean               float64 `json:"mean"`
	Std                float64 `json:"std"`
	P5                 float64 `json:"p5"`
	P95                float64 `json:"p95"`
	ConfidenceInterval string  `json:"confidence_interval"`
}
