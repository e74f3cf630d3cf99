package handlers

import (
	"net/http"

	"aromadose/internal/dosage"
	applog "aromadose/internal/log"
)

// ReferenceData serves the static toxicological reference tables for display
// and documentation by clients. Pure data, no computation.
func ReferenceData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	applog.Debug(r.Context(), "reference data requested")
	writeJSON(w, r, http.StatusOK, dosage.ReferenceData())
}
