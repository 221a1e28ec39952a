package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/store"
)

// handleUpsertCandidate stores or replaces a candidate and their resume text.
func (s *Server) handleUpsertCandidate(w http.ResponseWriter, r *http.Request) {
	var candidate store.Candidate
	if err := s.decodeJSON(w, r, &candidate); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if candidate.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Candidate name is required")
		return
	}

	if err := s.store.UpsertCandidate(r.Context(), candidate); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, candidate)
}

// handleGetCandidate retrieves a candidate by ID.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Candidate not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}
