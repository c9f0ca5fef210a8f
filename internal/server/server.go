package server

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/shopfront/internal/auth"
	"github.com/hongminglow/shopfront/internal/config"
	"github.com/hongminglow/shopfront/internal/http/handlers"
	"github.com/hongminglow/shopfront/internal/middleware"
	"github.com/hongminglow/shopfront/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, users storage.UserStore, items storage.ItemStore) *Server {
	mux := http.NewServeMux()
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(users, tokenManager, cfg.BcryptCost).Register(mux)
	handlers.NewItemsHandler(items, tokenManager).Register(mux)

	handler := middleware.SecureHeaders(middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux)))

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

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
