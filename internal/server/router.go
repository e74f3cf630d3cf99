package server

import (
	"net/http"

	"aromadose/internal/handlers"
)

func newRouter(apiKeyHash string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", handlers.Health)

	api := http.NewServeMux()
	api.HandleFunc("/api/calculate", handlers.Calculate)
	api.HandleFunc("/api/reference-data", handlers.ReferenceData)
	api.HandleFunc("/api/history", handlers.History)
	mux.Handle("/api/", handlers.RequireAPIKey(apiKeyHash, api))

	return mux
}
