package handlers

import (
	"encoding/json"
	"net/http"

	applog "aromadose/internal/log"
	"aromadose/models"
)

const (
	sessionHistoryKey = "calc:history"
	historyLimit      = 10
)

// historyEntry is the per-session summary kept for each calculation.
type historyEntry struct {
	ReportID       string  `json:"report_id"`
	FinalDoseMG    float64 `json:"final_dose_mg"`
	LimitingFactor string  `json:"limiting_factor"`
	Timestamp      string  `json:"timestamp"`
}

// History returns the recent calculations performed in this browser session,
// newest first.
func History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, r, http.StatusOK, sessionHistory(r))
}

func sessionHistory(r *http.Request) []historyEntry {
	entries := []historyEntry{}
	if sessionManager == nil {
		return entries
	}

	raw := sessionManager.GetString(r.Context(), sessionHistoryKey)
	if raw == "" {
		return entries
	}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		applog.Debug(r.Context(), "discarding malformed session history", "error", err)
		return []historyEntry{}
	}
	return entries
}

// pushHistory prepends the report summary to the session history, trimming to
// the retention limit.
func pushHistory(r *http.Request, report models.CalculationReport) {
	if sessionManager == nil {
		return
	}

	entries := append([]historyEntry{{
		ReportID:       report.ReportID,
		FinalDoseMG:    report.DoseRecommendation.FinalDoseMG,
		LimitingFactor: report.DoseRecommendation.LimitingFactor,
		Timestamp:      report.CalculationTimestamp,
	}}, sessionHistory(r)...)

	if len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}

	encoded, err := json.Marshal(entries)
	if err != nil {
		applog.Error(r.Context(), "failed to encode session history", "error", err)
		return
	}
	sessionManager.Put(r.Context(), sessionHistoryKey, string(encoded))
}
