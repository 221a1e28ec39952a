package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/scoring"
)

func TestMemory_CompanyRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	exp := 5.0
	company := Company{
		ID:   1,
		Name: "Acme",
		Requirements: scoring.Requirements{
			Skills:     []string{"python", "docker"},
			Experience: &exp,
			Education:  []string{"computer science"},
		},
	}
	require.NoError(t, m.UpsertCompany(ctx, company))

	got, err := m.GetCompany(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, company, *got)
}

func TestMemory_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.UpsertCompany(ctx, Company{ID: 1, Name: "Acme"}))
	require.NoError(t, m.UpsertCompany(ctx, Company{ID: 1, Name: "Acme Corp"}))

	got, err := m.GetCompany(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
}

func TestMemory_GetMissing(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.GetCompany(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.GetCandidate(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for _, id := range []int{3, 1, 2} {
		require.NoError(t, m.UpsertCandidate(ctx, Candidate{ID: id, Name: "c"}))
	}

	got, err := m.ListCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
	assert.Equal(t, 3, got[2].ID)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = m.UpsertCandidate(ctx, Candidate{ID: id})
			_, _ = m.ListCandidates(ctx)
		}(i)
	}
	wg.Wait()

	got, err := m.ListCandidates(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 50)
}
