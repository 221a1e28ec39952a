package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/ingest"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/skills"
)

type ingestRequest struct {
	URL string `json:"url"`
}

type ingestResponse struct {
	URL             string   `json:"url"`
	Text            string   `json:"text"`
	SuggestedSkills []string `json:"suggested_skills"`
}

// handleIngestPosting fetches a job posting, extracts its text and suggests
// the skills found in it as requirement candidates.
func (s *Server) handleIngestPosting(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if req.URL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Posting URL is required")
		return
	}

	posting, err := ingest.FetchPosting(r.Context(), req.URL, s.ingestOpts)
	if err != nil {
		s.log.Warn("posting fetch failed", zap.String("url", req.URL), zap.Error(err))
		var ingestErr *ingest.Error
		if errors.As(err, &ingestErr) {
			s.errorResponse(w, http.StatusBadGateway, ingestErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Info("posting ingested",
		zap.String("url", posting.URL),
		zap.String("preview", logger.TruncateForLog(posting.Text, 120)))

	s.jsonResponse(w, http.StatusOK, ingestResponse{
		URL:             posting.URL,
		Text:            posting.Text,
		SuggestedSkills: skills.Extract(posting.Text, nil),
	})
}
