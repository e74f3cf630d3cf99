package models

// Contraindication severities.
const (
	ContraindicationAbsolute = "absolute"
	ContraindicationRelative = "relative"
)

// Contraindication is one exclusion rule that fired for the request.
type Contraindication struct {
	Type           string `json:"type"`
	Reason         string `json:"reason"`
	Recommendation string `json:"recommendation"`
}
