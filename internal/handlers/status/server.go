// Package status serves health and reconciliation status over HTTP.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/KirkDiggler/nowplaying/internal/services/reconcile"
	"github.com/KirkDiggler/nowplaying/internal/services/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultAddr is the default listen address
const DefaultAddr = "127.0.0.1:8081"

// Provider reports the reconciliation loop state
type Provider interface {
	Status() reconcile.Status
}

// Config holds server configuration
type Config struct {
	Addr     string
	Loop     Provider
	Sessions session.Service
}

// Server is the status HTTP server
type Server struct {
	router   chi.Router
	server   *http.Server
	loop     Provider
	sessions session.Service
}

// Response is the body of the status endpoint
type Response struct {
	Scraping            string     `json:"scraping"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	LastTick            *time.Time `json:"last_tick,omitempty"`
	LastError           string     `json:"last_error,omitempty"`
	Sessions            int        `json:"sessions"`
	ActiveAccountID     string     `json:"active_account_id,omitempty"`
}

// NewServer creates a status server
func NewServer(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Loop == nil {
		return nil, errors.New("loop cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session service cannot be nil")
	}

	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	s := &Server{
		router:   chi.NewRouter(),
		loop:     cfg.Loop,
		sessions: cfg.Sessions,
	}

	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/status", s.handleStatus)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	log.Printf("STATUS: listening on http://%s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessions, err := s.sessions.ListSessions(ctx)
	if err != nil {
		log.Printf("STATUS: failed to list sessions: %v", err)
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}

	active, err := s.sessions.GetActive(ctx)
	if err != nil {
		log.Printf("STATUS: failed to get active session: %v", err)
		http.Error(w, "failed to get active session", http.StatusInternalServerError)
		return
	}

	loop := s.loop.Status()
	resp := Response{
		Scraping:            "up",
		ConsecutiveFailures: loop.Breaker.ConsecutiveFailures,
		LastError:           loop.LastError,
		Sessions:            len(sessions.Sessions),
	}
	if loop.Breaker.Down {
		resp.Scraping = "down"
	}
	if !loop.LastTick.IsZero() {
		lastTick := loop.LastTick
		resp.LastTick = &lastTick
	}
	if active.Session != nil {
		resp.ActiveAccountID = active.Session.AccountID
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("STATUS: failed to encode response: %v", err)
	}
}
