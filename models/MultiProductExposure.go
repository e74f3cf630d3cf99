package models

// MultiProductExposure lists the other products used during the same day, each
// expressed as a constituent-name → exposed-mass (mg) mapping, so the overall
// AEL budget can be aggregated across products.
type MultiProductExposure struct {
	Products []map[string]float64 `json:"products"`
}
