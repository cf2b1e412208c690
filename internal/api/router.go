package api

import (
	"net/http"

	"course-route-service/internal/api/handlers"
)

// NewRouter wires the HTTP surface and returns an http.Handler.
// The optimizer is pure computation with no external collaborators, so the
// surface is a single optimization endpoint plus a liveness probe.
func NewRouter() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/optimize", handlers.Optimize)

	return requestIDMiddleware(loggingMiddleware(mux))
}
