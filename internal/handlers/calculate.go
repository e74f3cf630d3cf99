package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aromadose/internal/dosage"
	applog "aromadose/internal/log"
	"aromadose/models"
)

const maxCalculateBodySize = 1 << 20 // 1 MiB

// Calculate runs the dose computation for a single request. Malformed input
// yields a 400 with a stable error code; domain-level computation failures
// are already folded into the report by the calculator and never surface as
// HTTP errors.
func Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var request models.CalculationRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCalculateBodySize))
	if err := decoder.Decode(&request); err != nil {
		applog.Debug(r.Context(), "calculate request decode failed", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid_input", "le corps de la requête n'est pas un document JSON valide")
		return
	}

	if request.EssentialOil != nil {
		request.EssentialOil.Normalize()
	}
	request.Application.Normalize()

	report, err := calculator.Calculate(request)
	if err != nil {
		if errors.Is(err, dosage.ErrInvalidInput) {
			applog.Debug(r.Context(), "calculate rejected invalid input", "error", err)
			writeError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
			return
		}
		applog.Error(r.Context(), "calculate failed unexpectedly", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal_error", "le calcul a échoué")
		return
	}

	persistCalculation(r, request, report)
	pushHistory(r, report)

	applog.Info(r.Context(), "dose calculated",
		"reportID", report.ReportID,
		"route", string(request.Application.Route),
		"finalDoseMG", report.DoseRecommendation.FinalDoseMG,
		"limitingFactor", report.DoseRecommendation.LimitingFactor,
	)
	writeJSON(w, r, http.StatusOK, report)
}

// persistCalculation writes the audit row. Persistence is best effort: a
// failure is logged and never blocks the response.
func persistCalculation(r *http.Request, request models.CalculationRequest, report models.CalculationReport) {
	if database == nil {
		return
	}

	oilName := ""
	if request.EssentialOil != nil {
		oilName = request.EssentialOil.Name
	} else if request.Formula != nil && len(request.Formula.EssentialOils) > 0 {
		oilName = request.Formula.EssentialOils[0].Oil.Name
	}

	record := models.CalculationRecord{
		ReportID:              report.ReportID,
		OilName:               oilName,
		Route:                 string(request.Application.Route),
		AgeCategory:           string(request.Individual.AgeCategory),
		FinalDoseMG:           report.DoseRecommendation.FinalDoseMG,
		LimitingFactor:        report.DoseRecommendation.LimitingFactor,
		LimitingConstituent:   report.DoseRecommendation.LimitingConstituent,
		ContraindicationCount: len(report.Contraindications),
		WarningCount:          len(report.Warnings),
	}

	if err := database.WithContext(r.Context()).Create(&record).Error; err != nil {
		applog.Error(r.Context(), "failed to persist calculation record", "error", err, "reportID", report.ReportID)
	}
}
