package mock

import (
	"context"
	"testing"

	"aromadose/models"
)

func TestNewSeedsReferenceData(t *testing.T) {
	db, err := New(context.Background())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var entries []models.ReferenceEntry
	if err := db.Where("kind = ?", models.ReferenceKindNOAEL).Find(&entries).Error; err != nil {
		t.Fatalf("load NOAEL entries: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected seeded NOAEL entries")
	}

	var record models.CalculationRecord
	if err := db.Create(&models.CalculationRecord{ReportID: "mock-report", OilName: "Lavande vraie"}).Error; err != nil {
		t.Fatalf("create calculation record: %v", err)
	}
	if err := db.Where("report_id = ?", "mock-report").First(&record).Error; err != nil {
		t.Fatalf("load calculation record: %v", err)
	}
	if record.OilName != "Lavande vraie" {
		t.Fatalf("unexpected oil name %q", record.OilName)
	}
}
