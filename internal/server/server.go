// Package server exposes a ring chart over HTTP: the rendered PNG and a
// hit-test endpoint for client-side tooltips.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phanxgames/ringchart"
	"github.com/phanxgames/ringchart/raster"
)

const (
	defaultSize = 400
	maxSize     = 4096
)

// Server is the HTTP front end for one chart. Every request renders the chart
// at the requested size first, so handlers hold mu for their whole duration.
type Server struct {
	router chi.Router
	log    *slog.Logger

	mu    sync.Mutex
	chart *ringchart.Chart
}

// New creates a server for chart.
func New(chart *ringchart.Chart, log *slog.Logger) *Server {
	s := &Server{chart: chart, log: log}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/chart.png", s.handleChartPNG)
	r.Get("/api/hit", s.handleHit)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	s.writeBody(w, []byte(`{"status":"ok"}`))
}

// handleChartPNG renders the chart. Optional x and y highlight the item
// under that pixel.
func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	width, height, err := sizeParams(r)
	if err != nil {
		s.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	opts := raster.Options{Width: width, Height: height, Background: &ringchart.ColorWhite}

	q := r.URL.Query()
	if q.Has("x") || q.Has("y") {
		x, y, err := pointParams(r)
		if err != nil {
			s.jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		opts.Highlight = &ringchart.Vec2{X: x, Y: y}
	}

	var buf bytes.Buffer
	s.mu.Lock()
	err = raster.EncodePNG(&buf, s.chart, opts)
	if opts.Highlight != nil {
		s.chart.PointerExit(nil)
	}
	s.mu.Unlock()
	if err != nil {
		s.jsonError(w, "render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	s.writeBody(w, buf.Bytes())
}

// hitResponse describes the item under a point.
type hitResponse struct {
	Hit      bool    `json:"hit"`
	Tooltip  string  `json:"tooltip,omitempty"`
	Value    float64 `json:"value,omitempty"`
	Depth    int     `json:"depth,omitempty"`
	MinAngle float64 `json:"minAngle,omitempty"`
	MaxAngle float64 `json:"maxAngle,omitempty"`
}

func (s *Server) handleHit(w http.ResponseWriter, r *http.Request) {
	width, height, err := sizeParams(r)
	if err != nil {
		s.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	x, y, err := pointParams(r)
	if err != nil {
		s.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var resp hitResponse
	s.mu.Lock()
	s.chart.Render(nil, float64(width), float64(height))
	if it := s.chart.HitTest(x, y); it != nil {
		resp = hitResponse{
			Hit:      true,
			Tooltip:  it.Tooltip,
			Value:    it.Value(),
			Depth:    it.Depth(),
			MinAngle: it.MinAngle(),
			MaxAngle: it.MaxAngle(),
		}
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	s.writeJSON(w, resp)
}

// sizeParams reads width and height, defaulting to a square image.
func sizeParams(r *http.Request) (width, height int, err error) {
	width, err = intParam(r, "width", defaultSize)
	if err != nil {
		return 0, 0, err
	}
	height, err = intParam(r, "height", defaultSize)
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || v > maxSize {
		return 0, fmt.Errorf("%s must be an integer in [1, %d]", name, maxSize)
	}
	return v, nil
}

func pointParams(r *http.Request) (x, y float64, err error) {
	q := r.URL.Query()
	x, err = strconv.ParseFloat(q.Get("x"), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("x must be a number")
	}
	y, err = strconv.ParseFloat(q.Get("y"), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("y must be a number")
	}
	return x, y, nil
}

func (s *Server) jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	s.writeJSON(w, map[string]string{"error": msg})
}

// writeJSON encodes v as the response body, logging write failures.
func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("response write failed", "err", err)
	}
}

func (s *Server) writeBody(w http.ResponseWriter, body []byte) {
	if _, err := w.Write(body); err != nil {
		s.log.Warn("response write failed", "err", err)
	}
}

// requestLogger logs incoming requests.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
