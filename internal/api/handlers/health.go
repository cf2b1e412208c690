package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint. The optimizer has no
// backing services, so liveness is the only meaningful probe.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{"status": "ok", "service": "course-route-service"}
	writeJSON(w, r, http.StatusOK, res)
}
