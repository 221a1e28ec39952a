package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/quality"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/store"
)

// bulkConcurrency bounds the number of candidates scored in parallel.
const bulkConcurrency = 8

type analyzeRequest struct {
	Requirements scoring.Requirements `json:"requirements"`
	ResumeText   string               `json:"resume_text"`
}

type analyzeResponse struct {
	FitScore  float64            `json:"fit_score"`
	Breakdown *scoring.Breakdown `json:"breakdown"`
	Quality   *quality.Report    `json:"quality"`
}

// readValidatedBody reads the request body and, when a schema validator is
// configured, checks its structure before any decoding happens.
func (s *Server) readValidatedBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if s.validator != nil {
		if err := s.validator.ValidateBytes(body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

// handleAnalyze scores a raw resume against inline requirements.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := s.readValidatedBody(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req analyzeRequest
	if err := unmarshalStrictJSON(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	fit, breakdown, err := scoring.ComputeFit(req.Requirements, req.ResumeText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, analyzeResponse{
		FitScore:  fit,
		Breakdown: breakdown,
		Quality:   s.engine.Analyze(r.Context(), req.ResumeText),
	})
}

type analyzeByIDRequest struct {
	CompanyID   int `json:"company_id"`
	CandidateID int `json:"candidate_id"`
}

// handleAnalyzeByID scores a stored candidate against a stored company.
func (s *Server) handleAnalyzeByID(w http.ResponseWriter, r *http.Request) {
	var req analyzeByIDRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	company, err := s.store.GetCompany(r.Context(), req.CompanyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Company not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), req.CandidateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Candidate not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	fit, breakdown, err := scoring.ComputeFit(company.Requirements, candidate.ResumeText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"company_id":   company.ID,
		"candidate_id": candidate.ID,
		"fit_score":    fit,
		"breakdown":    breakdown,
		"quality":      s.engine.Analyze(r.Context(), candidate.ResumeText),
	})
}

type analyzeBulkRequest struct {
	CompanyID    int   `json:"company_id"`
	CandidateIDs []int `json:"candidate_ids,omitempty"` // all stored candidates when empty
}

type bulkResult struct {
	CandidateID int                `json:"candidate_id"`
	Name        string             `json:"name"`
	FitScore    float64            `json:"fit_score"`
	Breakdown   *scoring.Breakdown `json:"breakdown"`
}

// handleAnalyzeBulk scores many candidates against one company's requirements
// concurrently and returns results ordered best fit first.
func (s *Server) handleAnalyzeBulk(w http.ResponseWriter, r *http.Request) {
	var req analyzeBulkRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	company, err := s.store.GetCompany(r.Context(), req.CompanyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Company not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	candidates, err := s.resolveCandidates(r, req.CandidateIDs)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Candidate not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Storage error: "+err.Error())
		return
	}

	results := make([]bulkResult, len(candidates))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(bulkConcurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fit, breakdown, err := scoring.ComputeFit(company.Requirements, candidate.ResumeText)
			if err != nil {
				return err
			}
			results[i] = bulkResult{
				CandidateID: candidate.ID,
				Name:        candidate.Name,
				FitScore:    fit,
				Breakdown:   breakdown,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FitScore > results[j].FitScore
	})

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id":     uuid.New().String(),
		"company_id": company.ID,
		"results":    results,
		"count":      len(results),
	})
}

// resolveCandidates loads the requested candidates, or every stored candidate
// when no explicit IDs were given.
func (s *Server) resolveCandidates(r *http.Request, ids []int) ([]store.Candidate, error) {
	if len(ids) == 0 {
		return s.store.ListCandidates(r.Context())
	}

	candidates := make([]store.Candidate, 0, len(ids))
	for _, id := range ids {
		candidate, err := s.store.GetCandidate(r.Context(), id)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, nil
}

type comprehensiveRequest struct {
	ResumeText   string   `json:"resume_text"`
	TargetSkills []string `json:"target_skills,omitempty"`
}

// handleAnalyzeComprehensive runs the full quality report without fit scoring.
func (s *Server) handleAnalyzeComprehensive(w http.ResponseWriter, r *http.Request) {
	body, err := s.readValidatedBody(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req comprehensiveRequest
	if err := unmarshalStrictJSON(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.Comprehensive(r.Context(), req.ResumeText, req.TargetSkills))
}

// unmarshalStrictJSON decodes pre-read request bytes.
func unmarshalStrictJSON(data []byte, dst any) error {
	if len(data) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(data, dst)
}
