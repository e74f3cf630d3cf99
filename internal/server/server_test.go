package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"aromadose/internal/config"
)

func TestServerRoutes(t *testing.T) {
	srv := New(Config{Addr: ":0"})
	handler := srv.Handler()

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"reference data", http.MethodGet, "/api/reference-data", "", http.StatusOK},
		{"history", http.MethodGet, "/api/history", "", http.StatusOK},
		{"calculate rejects get", http.MethodGet, "/api/calculate", "", http.StatusMethodNotAllowed},
		{"unknown path", http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var body *strings.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("%s %s = %d, want %d", tc.method, tc.path, w.Code, tc.wantCode)
			}
		})
	}
}

func TestServerCalculateEndToEnd(t *testing.T) {
	srv := New(Config{Addr: ":0"})
	handler := srv.Handler()

	body := `{
		"individual": {"body_weight": 70, "age_category": "adulte"},
		"essential_oil": {
			"name": "Lavande vraie",
			"dominant_family": "esters",
			"constituents": [{"name": "linalool", "fraction": 0.35}]
		},
		"application": {"route": "topique", "daily_amount": 1000, "duration_days": 7}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("calculate = %d: %s", w.Code, w.Body.String())
	}

	var report struct {
		ReportID           string `json:"report_id"`
		DoseRecommendation struct {
			FinalDoseMG float64 `json:"final_dose_mg"`
		} `json:"dose_recommendation"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if report.ReportID == "" || report.DoseRecommendation.FinalDoseMG <= 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestServerAPIKeyGate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test key: %v", err)
	}

	srv := New(Config{Addr: ":0", APIKeyHash: string(hash)})
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/reference-data", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a key, got %d", w.Code)
	}

	authed := httptest.NewRequest(http.MethodGet, "/api/reference-data", nil)
	authed.Header.Set("Authorization", "Bearer secret-key")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authed)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with the key, got %d", w.Code)
	}

	probe := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, probe)
	if w.Code != http.StatusOK {
		t.Fatalf("the health probe must stay open, got %d", w.Code)
	}
}

func TestServerSessionDefaults(t *testing.T) {
	srv := New(Config{
		Addr: ":0",
		Session: config.SessionConfig{
			Lifetime:   30 * time.Minute,
			CookieName: "custom_session",
		},
	})
	if srv.httpServer.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("unexpected read header timeout: %v", srv.httpServer.ReadHeaderTimeout)
	}
	if srv.httpServer.Handler == nil {
		t.Fatal("expected a configured handler")
	}
}
