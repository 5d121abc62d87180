// Package http exposes the notation engine over a JSON HTTP API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/neon-law-foundation/notation"
	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/neon-law-foundation/notation/pkg/jsonfield"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ValidationIDHeader carries the validation ID on requests and responses.
const ValidationIDHeader = "X-Validation-ID"

// DefaultMaxBodySize bounds request bodies read by the handlers.
const DefaultMaxBodySize int64 = 2 << 20

// Engine defines the operations the HTTP API needs from the notation engine.
type Engine interface {
	Validate(ctx context.Context, raw string, opts ...notation.ValidateOption) (domain.ValidationResponse, error)
	ValidateField(kind jsonfield.Kind, text string) (domain.SchemaValidationResult, error)
	FieldKinds() []jsonfield.Kind
	Graph(raw string, machine domain.Machine) (string, error)
}

// Server implements ServerInterface on top of an Engine.
type Server struct {
	engine      Engine
	logger      *slog.Logger
	gatherer    prometheus.Gatherer
	maxBodySize int64
}

var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithGatherer exposes metrics from g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodySize = n
		}
	}
}

// NewHandler creates the HTTP handler for engine.
func NewHandler(engine Engine, opts ...Option) (http.Handler, error) {
	s := &Server{
		engine:      engine,
		logger:      slog.Default(),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}

	specRouter, err := newSpecRouter(context.Background())
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": notation.Version})
	})
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(rawSpec)
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.NotFound(func(w http.ResponseWriter, req *http.Request) {
			s.writeError(w, req, http.StatusNotFound, errors.New("no matching operation was found"))
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
			s.writeError(w, req, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		})
		r.Group(func(r chi.Router) {
			// Runs on matched routes only; chi answers 404 and 405 above.
			r.Use(requestValidator(specRouter, s.writeError))
			newRouter(s, r, s.writeError)
		})
	})
	return r, nil
}

// ListenAndServe serves handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("Shutdown signal received, shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// ValidateNotation handles POST /v1/notations/validate.
func (s *Server) ValidateNotation(w http.ResponseWriter, r *http.Request, params ValidateNotationParams) {
	doc, err := s.readDocument(w, r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	id := r.Header.Get(ValidationIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	opts := []notation.ValidateOption{notation.WithValidationID(id)}
	if params.IncludeWarnings != nil && *params.IncludeWarnings {
		opts = append(opts, notation.WithWarnings())
	}

	res, err := s.engine.Validate(r.Context(), doc, opts...)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set(ValidationIDHeader, id)
	writeJSON(w, http.StatusOK, res)
}

// RenderGraph handles POST /v1/notations/graph.
func (s *Server) RenderGraph(w http.ResponseWriter, r *http.Request, params RenderGraphParams) {
	doc, err := s.readDocument(w, r)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	machine := domain.MachineFlow
	if params.Machine != nil {
		machine = domain.Machine(*params.Machine)
	}

	chart, err := s.engine.Graph(doc, machine)
	if err != nil {
		s.writeError(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, GraphResponse{Machine: string(machine), Mermaid: chart})
}

// ListFieldKinds handles GET /v1/fields.
func (s *Server) ListFieldKinds(w http.ResponseWriter, _ *http.Request) {
	kinds := s.engine.FieldKinds()
	out := FieldKinds{Kinds: make([]string, 0, len(kinds))}
	for _, k := range kinds {
		out.Kinds = append(out.Kinds, string(k))
	}
	writeJSON(w, http.StatusOK, out)
}

// ValidateField handles POST /v1/fields/{kind}/validate.
func (s *Server) ValidateField(w http.ResponseWriter, r *http.Request, kind string) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodySize))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("failed to read body: %w", err))
		return
	}

	res, err := s.engine.ValidateField(jsonfield.Kind(kind), string(body))
	if errors.Is(err, domain.ErrUnknownFieldKind) {
		s.writeError(w, r, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// readDocument returns the notation text of a request. JSON bodies carry it
// in the document property; any other content type is the document itself.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return string(body), nil
	}

	var req DocumentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", fmt.Errorf("invalid request body: %w", err)
	}
	return req.Document, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		s.logger.Debug("Request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
