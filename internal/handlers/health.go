package handlers

import (
	"net/http"

	"github.com/courier-im/courier/internal/logging"
	"github.com/courier-im/courier/internal/store"
)

type HealthHandler struct {
	Store store.Store
	Log   logging.Logger
}

// Check reports liveness, reflecting store connectivity. Failures are
// reported, not recovered; the orchestrator decides whether to restart.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(); err != nil {
		h.Log.Error(r.Context(), "health check failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "store unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
