package server

import (
	"context"
	"net/http"
	"time"

	"github.com/mleow/account-be/internal/auth"
	"github.com/mleow/account-be/internal/config"
	"github.com/mleow/account-be/internal/http/handlers"
	"github.com/mleow/account-be/internal/middleware"
	"github.com/mleow/account-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.UserStore) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	mux := Routes(store, tokens)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Routes builds the API route table. Split out so tests can exercise the
// full surface without a listening socket.
func Routes(store storage.UserStore, tokens *auth.TokenManager) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.Auth(tokens)

	handlers.NewHealthHandler().Register(mux)

	authHandler := handlers.NewAuthHandler(store, tokens)
	authHandler.Register(mux, requireAuth)

	handlers.NewUsersHandler(store, authHandler.HandleMe).Register(mux, requireAuth)
	handlers.NewProgressHandler().Register(mux, requireAuth)

	mux.HandleFunc("/api/", handlers.NotFound)
	return mux
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
