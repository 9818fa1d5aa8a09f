// Package server exposes the demonstration catalogue over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/tour/internal"
	tt "github.com/gnoswap-labs/tour/internal/types"
)

const shutdownTimeout = 5 * time.Second

// Engine is the subset of the demo engine served over HTTP.
type Engine interface {
	Modules() []string
	Catalogue(modules ...string) []internal.DemoInfo
	Run(ctx context.Context, module string) ([]tt.Result, error)
	RunDemo(ctx context.Context, name string) (tt.Result, error)
}

type Server struct {
	engine Engine
	logger *zap.Logger
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func New(engine Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: engine, logger: logger}
}

// Handler returns the router with every route registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			s.logger.Error("Failed to write health check response", zap.Error(err))
		}
	})

	r.Route("/demos", func(r chi.Router) {
		r.Get("/", s.listDemos)
		r.Get("/{module}", s.runModule)
		r.Get("/{module}/{demo}", s.runDemo)
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type catalogueResponse struct {
	Modules []string            `json:"modules"`
	Demos   []internal.DemoInfo `json:"demos"`
}

func (s *Server) listDemos(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, catalogueResponse{
		Modules: s.engine.Modules(),
		Demos:   s.engine.Catalogue(),
	})
}

func (s *Server) runModule(w http.ResponseWriter, r *http.Request) {
	results, err := s.engine.Run(r.Context(), chi.URLParam(r, "module"))
	if err != nil {
		s.respondEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, results)
}

func (s *Server) runDemo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "module") + "/" + chi.URLParam(r, "demo")
	result, err := s.engine.RunDemo(r.Context(), name)
	if err != nil {
		s.respondEngineError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) respondEngineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, internal.ErrUnknownModule), errors.Is(err, internal.ErrUnknownDemo):
		status = http.StatusNotFound
	case errors.Is(err, internal.ErrDemoDisabled):
		status = http.StatusForbidden
	default:
		s.logger.Error("engine error", zap.Error(err))
	}
	s.respondJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
