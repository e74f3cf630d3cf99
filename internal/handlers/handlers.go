// Package handlers implements the JSON API surface of the dose calculation
// service.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"aromadose/internal/dosage"
	applog "aromadose/internal/log"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	calculator     = dosage.New()
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, db *gorm.DB) {
	sessionManager = sm
	database = db
}

// ReplaceCalculator swaps the calculator instance, enabling deterministic
// seeding in tests.
func ReplaceCalculator(c *dosage.Calculator) {
	if c == nil {
		panic("handlers: nil calculator provided")
	}
	calculator = c
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(r.Context(), "failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, errorResponse{Code: code, Message: message})
}
