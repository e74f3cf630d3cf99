package models

// Individual captures the physiological risk profile of the person the dose is
// computed for.
type Individual struct {
	BodyWeight         float64            `json:"body_weight"`
	AgeCategory        AgeCategory        `json:"age_category"`
	Sex                Sex                `json:"sex"`
	PhysiologicalState PhysiologicalState `json:"physiological_state"`
	Pathologies        []Pathology        `json:"pathologies"`
	Treatments         []string           `json:"treatments"`
}

// HasPathology reports whether the given pathology is present.
func (i Individual) HasPathology(p Pathology) bool {
	for _, candidate := range i.Pathologies {
		if candidate == p {
			return true
		}
	}
	return false
}

// HasRelevantPathology reports whether any pathology other than the explicit
// "none" marker is declared.
func (i Individual) HasRelevantPathology() bool {
	for _, candidate := range i.Pathologies {
		if candidate != PathologyNone {
			return true
		}
	}
	return false
}

// HasTreatment reports whether the free-text treatment tag is present.
func (i Individual) HasTreatment(tag string) bool {
	for _, candidate := range i.Treatments {
		if candidate == tag {
			return true
		}
	}
	return false
}
