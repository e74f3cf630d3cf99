package models

// CalculationRequest bundles everything needed for one dose computation.
// Exactly one of EssentialOil or Formula must be provided.
type CalculationRequest struct {
	Individual           Individual            `json:"individual"`
	EssentialOil         *EssentialOil         `json:"essential_oil,omitempty"`
	Formula              *Formula              `json:"formula,omitempty"`
	Application          Application           `json:"application"`
	MultiProductExposure *MultiProductExposure `json:"multi_product_exposure,omitempty"`
}
