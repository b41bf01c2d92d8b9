package indexer

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the read-only JSON API over the projection.
type Server struct {
	store *Store
}

// NewServer wraps a store with the HTTP read API.
func NewServer(store *Store) *Server {
	return &Server{store: store}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/proposals", s.handleListProposals)
		r.Get("/proposals/{id}", s.handleGetProposal)
		r.Get("/winner", s.handleGetWinner)
	})

	return r
}

func (s *Server) handleListProposals(w http.ResponseWriter, r *http.Request) {
	proposals, err := s.store.ListProposals(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"proposals": proposals})
}

func (s *Server) handleGetProposal(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		writeError(w, http.StatusBadRequest, "proposal id must be 0-255")
		return
	}
	p, found, err := s.store.GetProposal(r.Context(), uint8(id))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "proposal not indexed")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleGetWinner(w http.ResponseWriter, r *http.Request) {
	winner, found, err := s.store.GetWinner(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "no winner declared yet")
		return
	}
	writeJSON(w, http.StatusOK, winner)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
