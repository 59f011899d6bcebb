package handlers

import (
	"net/http"

	"github.com/mleow/account-be/internal/http/respond"
)

// HealthHandler reports basic liveness.
type HealthHandler struct{}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// NotFound is the catch-all for unmatched /api/* paths.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	respond.Error(w, http.StatusNotFound, "API endpoint not found")
}
