// Package server provides the HTTP REST API for the travel planner.
//
// The server is a thin boundary: it decodes request bodies, calls the
// stateless planning core, and maps results and typed errors onto the
// response envelope. All domain decisions live in the core packages.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/travel-planner/internal/clock"
	"github.com/jonathan/travel-planner/internal/profilestore"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	profiles   profilestore.Store
	clk        clock.Clock
}

// Config holds server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
	Profiles       profilestore.Store
	Clock          clock.Clock
	Verbose        bool
}

// New creates a new server instance. A nil profile store falls back to the
// in-memory store, a nil clock to the system clock.
func New(cfg Config) *Server {
	s := &Server{
		profiles: cfg.Profiles,
		clk:      cfg.Clock,
	}
	if s.profiles == nil {
		s.profiles = profilestore.NewMemory()
	}
	if s.clk == nil {
		s.clk = clock.System{}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/plan-trip", s.handlePlanTrip)
	mux.HandleFunc("POST /api/estimate-costs", s.handleEstimateCosts)
	mux.HandleFunc("POST /api/validate-input", s.handleValidateInput)
	mux.HandleFunc("POST /api/analyze-input", s.handleAnalyzeInput)
	mux.HandleFunc("GET /api/profiles/{id}/preferences", s.handleGetPreferences)
	mux.HandleFunc("PUT /api/profiles/{id}/preferences", s.handlePutPreferences)
	mux.HandleFunc("GET /api/profiles/{id}/travel-input", s.handleGetTravelInput)
	mux.HandleFunc("PUT /api/profiles/{id}/travel-input", s.handlePutTravelInput)
	mux.HandleFunc("GET /health", s.handleHealth)

	corsOptions := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}

	handler := cors.New(corsOptions).Handler(mux)
	if cfg.Verbose {
		handler = logRequests(handler)
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// logRequests logs the method, path and duration of each request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

// Handler exposes the configured HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("travel planner listening on %s", s.httpServer.Addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Printf("shutting down")
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
