package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mleow/account-be/internal/auth"
	"github.com/mleow/account-be/internal/http/respond"
	"github.com/mleow/account-be/internal/middleware"
	"github.com/mleow/account-be/internal/models/dto"
	"github.com/mleow/account-be/internal/storage"
)

// UsersHandler owns the /api/users subtree: profile update, profile
// retrieval, and the static endpoint index.
type UsersHandler struct {
	store storage.UserStore
	me    http.HandlerFunc
}

// NewUsersHandler constructs the handler. me serves /api/users/profile with
// the same shape as /api/auth/me.
func NewUsersHandler(store storage.UserStore, me http.HandlerFunc) *UsersHandler {
	return &UsersHandler{store: store, me: me}
}

// Register attaches user routes to the mux.
func (h *UsersHandler) Register(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.Handle("/api/users/update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/users/profile", requireAuth(h.me))
	mux.HandleFunc("/api/users/", h.handleIndex)
}

func (h *UsersHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	var req dto.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	update, err := h.buildUpdate(r, claims.UserID, req)
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			respond.Error(w, apiErr.status, apiErr.message)
			return
		}
		log.Printf("build update error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	user, err := h.store.UpdateUser(r.Context(), claims.UserID, update)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusBadRequest, "Email already in use")
		default:
			log.Printf("update user error: %v", err)
			respond.Error(w, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	respond.JSON(w, http.StatusOK, dto.UpdateResponse{
		Message: "Profile updated successfully",
		User:    user.Public(),
	})
}

// buildUpdate translates the request into a partial update, verifying the
// current password before any password change is accepted.
func (h *UsersHandler) buildUpdate(r *http.Request, userID string, req dto.UpdateRequest) (storage.UserUpdate, error) {
	var update storage.UserUpdate

	if name := strings.TrimSpace(req.Name); name != "" {
		update.Name = &name
	}
	if email := strings.TrimSpace(strings.ToLower(req.Email)); email != "" {
		update.Email = &email
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		update.Phone = &phone
	}
	if req.Birthdate != "" {
		birthdate, err := time.Parse("2006-01-02", req.Birthdate)
		if err != nil {
			return storage.UserUpdate{}, &apiError{http.StatusBadRequest, "Invalid birthdate format, expected YYYY-MM-DD"}
		}
		update.Birthdate = &birthdate
	}

	if req.NewPassword == "" && req.CurrentPassword == "" {
		return update, nil
	}
	if req.NewPassword == "" || req.CurrentPassword == "" {
		return storage.UserUpdate{}, &apiError{http.StatusBadRequest, "Both current and new password are required to change password"}
	}
	if len(req.NewPassword) < 6 {
		return storage.UserUpdate{}, &apiError{http.StatusBadRequest, "Password must be at least 6 characters"}
	}

	user, err := h.store.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.UserUpdate{}, &apiError{http.StatusNotFound, "User not found"}
		}
		return storage.UserUpdate{}, err
	}
	if !auth.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return storage.UserUpdate{}, &apiError{http.StatusBadRequest, "Current password is incorrect"}
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return storage.UserUpdate{}, err
	}
	update.PasswordHash = &hash
	return update, nil
}

// handleIndex serves the static endpoint listing at /api/users/ and the
// API-wide 404 for anything else under the subtree.
func (h *UsersHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/users/" && r.URL.Path != "/api/users" {
		NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "Users API",
		"endpoints": map[string]string{
			"GET /api/users/profile": "Get the authenticated user's profile",
			"PUT /api/users/update":  "Update the authenticated user's profile",
		},
	})
}

type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return e.message
}
