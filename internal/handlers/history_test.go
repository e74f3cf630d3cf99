package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"

	"aromadose/internal/dosage"
)

func TestHistoryEmptySession(t *testing.T) {
	sm := scs.New()
	Configure(sm, nil)
	defer Configure(nil, nil)

	handler := sm.LoadAndSave(http.HandlerFunc(History))
	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Fatalf("an empty session should return an empty array, got %q", got)
	}
}

func TestHistoryMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/history", nil)
	w := httptest.NewRecorder()
	History(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", w.Code)
	}
}

func TestHistoryRecordsCalculations(t *testing.T) {
	sm := scs.New()
	Configure(sm, nil)
	defer Configure(nil, nil)
	ReplaceCalculator(dosage.NewSeeded(1))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/calculate", Calculate)
	mux.HandleFunc("/api/history", History)
	handler := sm.LoadAndSave(mux)

	calcReq := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(validCalculateBody))
	calcW := httptest.NewRecorder()
	handler.ServeHTTP(calcW, calcReq)
	if calcW.Code != http.StatusOK {
		t.Fatalf("calculate failed: %d %s", calcW.Code, calcW.Body.String())
	}

	cookies := calcW.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie on the calculate response")
	}

	histReq := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	for _, cookie := range cookies {
		histReq.AddCookie(cookie)
	}
	histW := httptest.NewRecorder()
	handler.ServeHTTP(histW, histReq)

	if histW.Code != http.StatusOK {
		t.Fatalf("history failed: %d %s", histW.Code, histW.Body.String())
	}

	var entries []historyEntry
	if err := json.Unmarshal(histW.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one history entry, got %d", len(entries))
	}
	if entries[0].ReportID == "" {
		t.Fatal("expected the report id in the history entry")
	}
	if entries[0].FinalDoseMG <= 0 {
		t.Fatalf("expected a positive recorded dose, got %v", entries[0].FinalDoseMG)
	}
}

func TestHistoryTrimsToLimit(t *testing.T) {
	sm := scs.New()
	Configure(sm, nil)
	defer Configure(nil, nil)
	ReplaceCalculator(dosage.NewSeeded(1))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/calculate", Calculate)
	mux.HandleFunc("/api/history", History)
	handler := sm.LoadAndSave(mux)

	var cookies []*http.Cookie
	for i := 0; i < historyLimit+3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(validCalculateBody))
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("calculate %d failed: %d %s", i, w.Code, w.Body.String())
		}
		if fresh := w.Result().Cookies(); len(fresh) > 0 {
			cookies = fresh
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var entries []historyEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if len(entries) != historyLimit {
		t.Fatalf("expected the history trimmed to %d entries, got %d", historyLimit, len(entries))
	}
}
