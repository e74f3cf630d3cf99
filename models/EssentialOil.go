package models

const (
	// DefaultDensity is assumed when an oil omits its density (g/mL).
	DefaultDensity = 0.9
	// DefaultDropWeightMG is assumed when an oil omits the mass of one drop.
	DefaultDropWeightMG = 30.0
)

// EssentialOil describes a single oil, either supplied directly in a request or
// synthesised by merging a multi-oil formula.
type EssentialOil struct {
	Name           string            `json:"name"`
	Constituents   []Constituent     `json:"constituents"`
	DominantFamily BiochemicalFamily `json:"dominant_family"`
	Density        float64           `json:"density"`
	DropWeightMG   float64           `json:"drop_weight_mg"`
	// Defurocoumarinated marks citrus oils with furocoumarins removed. It is
	// carried for future phototoxicity rules and not consumed by limit math.
	Defurocoumarinated bool               `json:"defurocoumarinated"`
	GCMSData           map[string]float64 `json:"gc_ms_data,omitempty"`
}

// EffectiveDropWeightMG returns the drop weight, falling back to the default.
// Merged oils carry no meaningful drop weight of their own and therefore use
// the fallback.
func (o EssentialOil) EffectiveDropWeightMG() float64 {
	if o.DropWeightMG <= 0 {
		return DefaultDropWeightMG
	}
	return o.DropWeightMG
}

// Normalize fills the physical defaults for fields the wire contract allows
// callers to omit.
func (o *EssentialOil) Normalize() {
	if o.Density <= 0 {
		o.Density = DefaultDensity
	}
	if o.DropWeightMG <= 0 {
		o.DropWeightMG = DefaultDropWeightMG
	}
}
