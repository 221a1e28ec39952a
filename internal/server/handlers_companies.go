package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-analyzer/internal/store"
)

// parsePathID parses an integer path parameter.
func parsePathID(r *http.Request, key string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(key))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// handleUpsertCompany stores or replaces a company and its requirements.
func (s *Server) handleUpsertCompany(w http.ResponseWriter, r *http.Request) {
	var company store.Company
	if err := s.decodeJSON(w, r, &company); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if company.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Company name is required")
		return
	}
	if err := company.Requirements.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.UpsertCompany(r.Context(), company); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, company)
}

// handleGetCompany retrieves a company by ID.
func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	company, err := s.store.GetCompany(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Company not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, company)
}

// handleListCompanies lists all stored companies.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.store.ListCompanies(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"companies": companies,
		"count":     len(companies),
	})
}
