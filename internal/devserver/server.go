// Package devserver is an in-memory stand-in for the LMS backend, used
// for local development and hermetic end-to-end tests. It implements only
// the endpoints the client consumes.
package devserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/learnhub/lmscli/config"
)

// Server wraps the HTTP server and router of the stub backend.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	users      *userStore
	logger     zerolog.Logger
}

// New constructs a Server with seeded accounts and courses.
func New(cfg config.DevServerConfig, logger zerolog.Logger) (*Server, error) {
	users, err := seedUsers()
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	auth := newAuthHandler(users, cfg.JWTSecret)
	userHandler := &userHandler{users: users, logger: logger}

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Timeout(60 * time.Second),
	)
	router.Get("/health", healthHandler)
	router.Get("/courses/published", publishedCoursesHandler)
	router.Post("/auth/login", auth.login)
	router.With(auth.requireAuth).Get("/users/profile", userHandler.profile)
	router.With(auth.requireAuth).Patch("/users/{userID}", userHandler.update)

	port := cfg.Port
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		users:      users,
		logger:     logger,
	}, nil
}

// Handler exposes the router, letting tests mount the stub on httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("dev server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown closes the HTTP server.
func (s *Server) Shutdown() error {
	return s.httpServer.Close()
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
