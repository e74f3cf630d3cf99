package models

import "gorm.io/gorm"

// Reference entry kinds.
const (
	ReferenceKindNOAEL = "noael"
	ReferenceKindIFRA  = "ifra"
	ReferenceKindCIR   = "cir"
)

// ReferenceEntry is one seeded toxicological reference row. The calculation
// engine works off its in-memory tables; these rows exist so operators can
// inspect and audit the seed dataset through the database.
type ReferenceEntry struct {
	gorm.Model
	Constituent string  `gorm:"index:idx_reference_kind_constituent,unique;not null" json:"constituent"`
	Kind        string  `gorm:"index:idx_reference_kind_constituent,unique;not null" json:"kind"`
	Value       float64 `gorm:"not null" json:"value"`
	Unit        string  `json:"unit"`
	Source      string  `json:"source"`
}
