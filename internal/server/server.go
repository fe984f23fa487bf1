// Package server exposes the tree engine over HTTP: render a posted
// tree to SVG or PNG, diff two trees, and report health. It is a thin
// facade; all semantics live in the pkg packages.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arborlab/arbor/pkg/cache"
	"github.com/arborlab/arbor/pkg/errors"
	treeio "github.com/arborlab/arbor/pkg/io"
	"github.com/arborlab/arbor/pkg/layout"
	"github.com/arborlab/arbor/pkg/pipeline"
	"github.com/arborlab/arbor/pkg/tree"
	"github.com/arborlab/arbor/pkg/tree/transform"
)

// renderTTL bounds how long rendered artifacts stay cached.
const renderTTL = 24 * time.Hour

// Options configures the facade.
type Options struct {
	// Cache stores rendered artifacts. Nil disables caching.
	Cache cache.Cache

	// Logger receives request logs. Nil uses the default logger.
	Logger *log.Logger
}

// Server is the HTTP facade over the tree engine.
type Server struct {
	router *chi.Mux
	runner *pipeline.Runner
	logger *log.Logger
}

// New assembles the router and middleware.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		router: chi.NewRouter(),
		runner: pipeline.NewRunner(opts.Cache, nil, logger),
		logger: logger,
	}

	s.router.Use(s.requestID)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Post("/diff", s.handleDiff)
		r.Post("/layout", s.handleLayout)
	})
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestID tags every request with a UUID, echoes it in the response,
// and logs method, path, and duration.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRender accepts a nested tree JSON document and responds with the
// rendered image. The format query parameter selects svg (default) or
// png. Artifacts are cached by content hash.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	if format != pipeline.FormatSVG && format != pipeline.FormatPNG {
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format))
		return
	}

	root, err := treeio.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, errors.FromTree(err, "decode tree"))
		return
	}

	res, err := s.runner.Execute(r.Context(), root, pipeline.Options{
		Formats: []string{format},
		TTL:     renderTTL,
	})
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format))
		return
	}
	writeImage(w, format, res.Artifacts[format])
}

// placementBody is one node position in the layout response.
type placementBody struct {
	Path  string  `json:"path"`
	Depth int     `json:"depth"`
	X     float64 `json:"x"`
}

// handleLayout accepts a nested tree JSON document and responds with
// tidy drawing coordinates, one entry per node in pre-order. The gap
// query parameter tunes the minimum sibling distance.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var gap float64
	if raw := r.URL.Query().Get("gap"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid gap %q", raw))
			return
		}
		gap = parsed
	}

	root, err := treeio.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, errors.FromTree(err, "decode tree"))
		return
	}

	placements := layout.Tidy(root, layout.Options{SiblingGap: gap})
	body := make([]placementBody, len(placements))
	for i, p := range placements {
		body[i] = placementBody{Path: tree.PathName(p.Node), Depth: p.Depth, X: p.X}
	}
	writeJSON(w, http.StatusOK, body)
}

// diffRequest is the body of POST /v1/diff.
type diffRequest struct {
	Left        json.RawMessage `json:"left"`
	Right       json.RawMessage `json:"right"`
	Attrs       []string        `json:"attrs,omitempty"`
	Aggregate   bool            `json:"aggregate,omitempty"`
	DetectMoves bool            `json:"detect_moves,omitempty"`
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if len(req.Left) == 0 || len(req.Right) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "both left and right trees are required"))
		return
	}

	left, err := treeio.ReadJSON(bytes.NewReader(req.Left))
	if err != nil {
		s.writeError(w, errors.FromTree(err, "decode left tree"))
		return
	}
	right, err := treeio.ReadJSON(bytes.NewReader(req.Right))
	if err != nil {
		s.writeError(w, errors.FromTree(err, "decode right tree"))
		return
	}

	res := transform.Diff(left, right, transform.DiffOptions{
		Attrs:              req.Attrs,
		AggregatePerParent: req.Aggregate,
		DetectMoves:        req.DetectMoves,
	})
	writeJSON(w, http.StatusOK, res)
}

func writeImage(w http.ResponseWriter, format string, data []byte) {
	switch format {
	case "png":
		w.Header().Set("Content-Type", "image/png")
	default:
		w.Header().Set("Content-Type", "image/svg+xml")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorBody{Code: errors.CodeOf(err), Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe runs the facade on addr until ctx is canceled, then
// shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, s *Server) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}
