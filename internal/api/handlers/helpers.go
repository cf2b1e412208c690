package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"course-route-service/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: req_id=%s method=%s path=%s err=%v",
			obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

// writeError answers with a JSON error body, echoing the request id so
// clients can correlate failures with server logs.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	body := map[string]string{"error": msg}
	if reqID := obs.RequestID(r.Context()); reqID != "" {
		body["request_id"] = reqID
	}
	writeJSON(w, r, status, body)
}
