package models

import "gorm.io/gorm"

// CalculationRecord is the audit row persisted after each calculation. It is
// write-only from the service's point of view: the calculator itself never
// reads it back.
type CalculationRecord struct {
	gorm.Model
	ReportID              string  `gorm:"uniqueIndex;not null" json:"report_id"`
	OilName               string  `json:"oil_name"`
	Route                 string  `json:"route"`
	AgeCategory           string  `json:"age_category"`
	FinalDoseMG           float64 `json:"final_dose_mg"`
	LimitingFactor        string  `json:"limiting_factor"`
	LimitingConstituent   string  `json:"limiting_constituent"`
	ContraindicationCount int     `json:"contraindication_count"`
	WarningCount          int     `json:"warning_count"`
}
