// Package httpapi serves the analysis engine over HTTP for the editor plugin.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/designqa/designqa/internal/application"
	"github.com/designqa/designqa/internal/domain"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Selection is the mutable selection state behind /api/selection.
type Selection interface {
	domain.SelectionSource
	Replace(elements []domain.DesignElement) uint64
	Clear() uint64
}

// Config wires the server.
type Config struct {
	Addr           string
	Version        string
	AllowedOrigin  string
	RequestTimeout time.Duration

	Service   *application.AnalyzeService
	Collector domain.ElementCollector
	Selection Selection
	Logger    *zap.Logger
	Now       func() time.Time
}

// Server is the companion HTTP service.
type Server struct {
	cfg        Config
	router     *mux.Router
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer builds the router and the underlying http.Server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Service == nil {
		return nil, errors.New("httpapi: analyze service is required")
	}
	if cfg.Collector == nil || cfg.Selection == nil {
		return nil, errors.New("httpapi: collector and selection are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	s := &Server{
		cfg:    cfg,
		router: mux.NewRouter(),
		logger: cfg.Logger,
	}
	s.router.Use(requestIDMiddleware)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.corsMiddleware)
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/analyze", s.handleAnalyze).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/api/analyze/test", s.handleAnalyzeSample).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/selection", s.handleGetSelection).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/selection", s.handlePutSelection).Methods(http.MethodPut)
	s.router.HandleFunc("/api/selection", s.handleClearSelection).Methods(http.MethodDelete)
	s.router.HandleFunc("/api/selection/analyze", s.handleAnalyzeSelection).Methods(http.MethodPost, http.MethodOptions)
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

// ListenAndServe runs the HTTP server until ctx ends, then drains in-flight
// requests before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	s.logger.Info("http server listening", zap.String("addr", s.cfg.Addr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.logger.Info("http server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
