// Package server exposes persisted validation reports over HTTP for
// dashboard-style consumers.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/solenne/datawarden/internal/core/store"
	"github.com/solenne/datawarden/internal/types"
)

// Server serves the read-only report API. Writes happen through the
// validate command; the HTTP surface only exposes history.
type Server struct {
	store        *store.Store
	defaultLimit int
}

// New builds a server over a report store.
func New(st *store.Store, defaultLimit int) (*Server, error) {
	if st == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &Server{store: st, defaultLimit: defaultLimit}, nil
}

// Routes assembles the router.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/reports", s.handleListReports)
		r.Get("/reports/{report_id}", s.handleGetReport)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// handleListReports returns recent reports, newest first.
// Optional query params: dataset (filter), limit.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	limit := s.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			renderError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if n < limit {
			limit = n
		}
	}

	reports, err := s.store.ListReports(r.Context(), r.URL.Query().Get("dataset"), limit)
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, "failed to list reports")
		return
	}
	render.JSON(w, r, map[string]any{"reports": reports})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseReportID(chi.URLParam(r, "report_id"))
	if err != nil {
		renderError(w, r, http.StatusBadRequest, "report_id must be a valid UUID")
		return
	}

	report, err := s.store.GetReport(r.Context(), id)
	if errors.Is(err, types.ErrReportNotFound) {
		renderError(w, r, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		renderError(w, r, http.StatusInternalServerError, "failed to load report")
		return
	}
	render.JSON(w, r, report)
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": message})
}
