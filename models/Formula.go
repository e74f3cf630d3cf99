package models

// FormulaItem pairs one essential oil with its share of the finished blend.
type FormulaItem struct {
	Oil        EssentialOil `json:"oil"`
	Percentage float64      `json:"percentage"`
	Lot        string       `json:"lot,omitempty"`
}

// Formula is an ordered multi-oil blend. Percentages must sum to 100 within a
// 0.1 tolerance before the blend can be merged.
type Formula struct {
	EssentialOils []FormulaItem `json:"essential_oils"`
}

// TotalPercentage sums the declared oil percentages.
func (f Formula) TotalPercentage() float64 {
	total := 0.0
	for _, item := range f.EssentialOils {
		total += item.Percentage
	}
	return total
}
