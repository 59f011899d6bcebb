package handlers

import (
	"net/http"

	"github.com/mleow/account-be/internal/http/respond"
)

// ProgressHandler serves the stubbed progress endpoint. The payload is a
// fixed placeholder, not derived from any stored data.
type ProgressHandler struct{}

// NewProgressHandler constructs the handler.
func NewProgressHandler() *ProgressHandler {
	return &ProgressHandler{}
}

// Register attaches the progress route to the mux.
func (h *ProgressHandler) Register(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("/api/progress", requireAuth(http.HandlerFunc(h.handle)))
}

func (h *ProgressHandler) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"completedLessons": 12,
		"totalLessons":     48,
		"streakDays":       5,
		"level":            "Beginner",
		"nextMilestone":    "Complete 15 lessons",
	})
}
