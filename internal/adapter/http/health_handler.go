package http

import (
	"net/http"
	"time"
)

// HealthCheck reports service liveness.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"service":   "food-ordering",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
