package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	applog "aromadose/internal/log"
)

// RequireAPIKey gates a handler behind a bearer token checked against the
// configured bcrypt hash. An empty hash leaves the handler open.
func RequireAPIKey(apiKeyHash string, next http.Handler) http.Handler {
	if strings.TrimSpace(apiKeyHash) == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := bearerToken(r)
		if !ok {
			writeError(w, r, http.StatusUnauthorized, "missing_api_key", "fournir la clé d'API dans l'en-tête Authorization")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)); err != nil {
			applog.Debug(r.Context(), "rejected api key", "error", err)
			writeError(w, r, http.StatusUnauthorized, "invalid_api_key", "clé d'API invalide")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
