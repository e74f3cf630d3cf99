package models

// Constituent is a named chemical fraction of an essential oil together with its
// toxicological reference data. Optional limits are pointers so that "not
// provided" is distinguishable from an explicit zero.
type Constituent struct {
	Name         string   `json:"name"`
	Fraction     float64  `json:"fraction"`
	NOAEL        *float64 `json:"noael,omitempty"`
	IFRALimit    *float64 `json:"ifra_limit,omitempty"`
	CIRLimit     *float64 `json:"cir_limit,omitempty"`
	Phototoxic   bool     `json:"phototoxic"`
	CMRStatus    bool     `json:"cmr_status"`
	AdditionalUF float64  `json:"additional_uf"`
	SourceOil    string   `json:"source_oil,omitempty"`
}
