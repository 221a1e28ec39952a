// Package store provides company and candidate record storage behind small
// repository interfaces, keeping the analysis engine free of any state.
package store

import (
	"context"
	"errors"

	"github.com/jonathan/resume-analyzer/internal/scoring"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Company is a stored company with its hiring requirements.
type Company struct {
	ID           int                  `json:"company_id"`
	Name         string               `json:"name"`
	Requirements scoring.Requirements `json:"requirements"`
}

// Candidate is a stored candidate with raw resume text.
type Candidate struct {
	ID         int    `json:"candidate_id"`
	Name       string `json:"name"`
	ResumeText string `json:"resume_text"`
}

// CompanyStore persists companies keyed by integer id.
type CompanyStore interface {
	UpsertCompany(ctx context.Context, c Company) error
	GetCompany(ctx context.Context, id int) (*Company, error)
	ListCompanies(ctx context.Context) ([]Company, error)
}

// CandidateStore persists candidates keyed by integer id.
type CandidateStore interface {
	UpsertCandidate(ctx context.Context, c Candidate) error
	GetCandidate(ctx context.Context, id int) (*Candidate, error)
	ListCandidates(ctx context.Context) ([]Candidate, error)
}

// Store combines both repositories.
type Store interface {
	CompanyStore
	CandidateStore
}
