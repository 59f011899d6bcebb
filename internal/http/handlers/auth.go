package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/mleow/account-be/internal/auth"
	"github.com/mleow/account-be/internal/http/respond"
	"github.com/mleow/account-be/internal/middleware"
	"github.com/mleow/account-be/internal/models"
	"github.com/mleow/account-be/internal/models/dto"
	"github.com/mleow/account-be/internal/storage"
)

// AuthHandler owns the register/login/me endpoints.
type AuthHandler struct {
	store  storage.UserStore
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// Register attaches auth routes to the mux. requireAuth guards /me.
func (h *AuthHandler) Register(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.HandleFunc("/api/auth/register", h.handleRegister)
	mux.HandleFunc("/api/auth/login", h.handleLogin)
	mux.Handle("/api/auth/me", requireAuth(http.HandlerFunc(h.HandleMe)))
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if name == "" || email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	if len(req.Password) < 6 {
		respond.Error(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("hash password error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	created, err := h.store.CreateUser(r.Context(), models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Printf("create user error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := h.tokens.Generate(created.ID.Hex(), created.Email)
	if err != nil {
		log.Printf("generate token error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respond.JSON(w, http.StatusCreated, dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    created.Public(),
	})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.store.FindByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Same message as a bad password so the response does not
			// reveal which part was wrong.
			respond.Error(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		log.Printf("login lookup error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respond.Error(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := h.tokens.Generate(user.ID.Hex(), user.Email)
	if err != nil {
		log.Printf("generate token error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respond.JSON(w, http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}

// HandleMe returns the authenticated user's profile. Also serves
// /api/users/profile, which shares this shape.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	user, err := h.store.FindByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("fetch user error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	respond.JSON(w, http.StatusOK, dto.UserResponse{User: user.Public()})
}
