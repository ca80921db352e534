// Package server exposes the event dispatcher over HTTP.
package server

// validators is a composable runtime validation library for Go.
// Copyright (C) 2023 John Dudmesh

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v "github.com/jdudmesh/validators"
	"github.com/jdudmesh/validators/decode"
	"github.com/jdudmesh/validators/internal/config"
	"github.com/jdudmesh/validators/internal/events"
)

type Server struct {
	httpServer  *http.Server
	router      *chi.Mux
	dispatcher  *events.Dispatcher
	gatherer    prometheus.Gatherer
	metricsPath string
	maxBodySize int64
	logger      *slog.Logger
}

// New creates the HTTP server. A nil gatherer disables the metrics route.
func New(cfg config.Config, dispatcher *events.Dispatcher, gatherer prometheus.Gatherer, logger *slog.Logger) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		dispatcher:  dispatcher,
		gatherer:    gatherer,
		metricsPath: cfg.MetricsPath,
		maxBodySize: cfg.MaxBodySize,
		logger:      logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) ListenAndServe(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/events", func(r chi.Router) {
		r.Post("/", s.handleDispatch)
		r.Post("/validate", s.handleValidate)
	})

	if s.gatherer != nil && s.metricsPath != "" {
		s.router.Method(http.MethodGet, s.metricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
}

type acceptedResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type errorResponse struct {
	Error  string    `json:"error"`
	Code   string    `json:"code,omitempty"`
	Issues []v.Issue `json:"issues,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	raw, err := decode.Request(r, decode.WithMaxBodySize(s.maxBodySize))
	if err != nil {
		s.writeError(w, err)
		return
	}

	event, err := s.dispatcher.Dispatch(r.Context(), raw)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusAccepted, acceptedResponse{
		ID:   event.EventID().String(),
		Type: event.EventType(),
	})
}

// handleValidate checks an event without dispatching it.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	raw, err := decode.Request(r, decode.WithMaxBodySize(s.maxBodySize))
	if err != nil {
		s.writeError(w, err)
		return
	}

	event, err := s.dispatcher.Validate(raw)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, acceptedResponse{
		ID:   event.EventID().String(),
		Type: event.EventType(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		status int
		resp   errorResponse
		verr   v.ValidationError
	)

	switch {
	case errors.As(err, &verr):
		status = http.StatusUnprocessableEntity
		resp = errorResponse{Error: "event failed validation", Code: "INVALID_EVENT", Issues: v.Issues(verr)}

	case errors.Is(err, decode.ErrBodyTooLarge):
		status = http.StatusRequestEntityTooLarge
		resp = errorResponse{Error: err.Error(), Code: "BODY_TOO_LARGE"}

	case errors.Is(err, decode.ErrUnsupportedContentType),
		errors.Is(err, decode.ErrMalformedInput):
		status = http.StatusBadRequest
		resp = errorResponse{Error: err.Error(), Code: "BAD_REQUEST"}

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
		resp = errorResponse{Error: "request cancelled", Code: "CANCELLED"}

	default:
		s.logger.Error("unhandled error", slog.String("error", err.Error()))
		status = http.StatusInternalServerError
		resp = errorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}
	}

	s.writeJSON(w, status, resp)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
