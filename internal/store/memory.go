package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-memory Store guarded by a mutex. It is the default
// backend and is safe for concurrent request handlers.
type Memory struct {
	mu         sync.RWMutex
	companies  map[int]Company
	candidates map[int]Candidate
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		companies:  make(map[int]Company),
		candidates: make(map[int]Candidate),
	}
}

// UpsertCompany creates or replaces a company record.
func (m *Memory) UpsertCompany(_ context.Context, c Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.companies[c.ID] = c
	return nil
}

// GetCompany returns the company with the given id or ErrNotFound.
func (m *Memory) GetCompany(_ context.Context, id int) (*Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// ListCompanies returns all companies ordered by id.
func (m *Memory) ListCompanies(_ context.Context) ([]Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Company, 0, len(m.companies))
	for _, c := range m.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpsertCandidate creates or replaces a candidate record.
func (m *Memory) UpsertCandidate(_ context.Context, c Candidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.candidates[c.ID] = c
	return nil
}

// GetCandidate returns the candidate with the given id or ErrNotFound.
func (m *Memory) GetCandidate(_ context.Context, id int) (*Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// ListCandidates returns all candidates ordered by id.
func (m *Memory) ListCandidates(_ context.Context) ([]Candidate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Candidate, 0, len(m.candidates))
	for _, c := range m.candidates {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
