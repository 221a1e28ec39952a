package quality

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/readability"
)

// fakeChecker returns canned issues or an error.
type fakeChecker struct {
	issues []string
	err    error
}

func (f *fakeChecker) Check(_ context.Context, _ string) ([]string, error) {
	return f.issues, f.err
}

// panicChecker simulates a crashing backend.
type panicChecker struct{}

func (panicChecker) Check(_ context.Context, _ string) ([]string, error) {
	panic("backend crashed")
}

const decentResume = `Summary: Built and optimized backend services for 5 years,
reduced costs by 30%.

Experience
Led a team of 4 engineers.

Education
BSc Computer Science

Skills
Python, Docker`

func TestAnalyze_CleanResumeHasFewSuggestions(t *testing.T) {
	e := NewEngine(nil, nil)
	report := e.Analyze(context.Background(), decentResume)

	for _, tip := range report.Suggestions {
		assert.NotContains(t, tip, "action verbs", "resume with strong verbs should not be flagged")
		assert.NotContains(t, tip, "Quantify impact")
	}
	assert.Empty(t, report.GrammarIssues)
	assert.Empty(t, report.Readability)
}

func TestAnalyze_MissingSections(t *testing.T) {
	e := NewEngine(nil, nil)
	report := e.Analyze(context.Background(), "just a plain paragraph with nothing resume-like, built nothing, 0 numbers")

	found := false
	for _, tip := range report.Suggestions {
		if strings.HasPrefix(tip, "Consider adding sections:") {
			found = true
			// At most three sections are named.
			assert.LessOrEqual(t, strings.Count(tip, ","), 2)
		}
	}
	assert.True(t, found, "expected a missing-sections suggestion")
}

func TestAnalyze_NoActionVerbs(t *testing.T) {
	e := NewEngine(nil, nil)
	report := e.Analyze(context.Background(), "I am a person who does things at a company")

	assert.Contains(t, report.Suggestions,
		"Use strong action verbs (e.g., built, optimized, implemented) at bullet starts.")
}

func TestAnalyze_GenericPhraseFirstHitOnly(t *testing.T) {
	e := NewEngine(nil, nil)
	report := e.Analyze(context.Background(),
		"Responsible for servers. Worked on tooling. A team player.")

	var hits []string
	for _, tip := range report.Suggestions {
		if strings.HasPrefix(tip, "Replace generic phrase") {
			hits = append(hits, tip)
		}
	}
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0], "responsible for")
}

func TestAnalyze_PassiveVoice(t *testing.T) {
	e := NewEngine(nil, nil)
	report := e.Analyze(context.Background(), "The system was designed by me. Experience, education, skills listed. Built 3 things.")

	found := false
	for _, tip := range report.Suggestions {
		if strings.Contains(tip, "passive voice") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAnalyze_QuantificationMissing(t *testing.T) {
	e := NewEngine(nil, nil)
	report := e.Analyze(context.Background(), "Built software without ever measuring anything")

	assert.Contains(t, report.Suggestions,
		"Quantify impact with numbers (e.g., 'reduced latency by 35%').")
}

func TestAnalyze_ReadabilityBackend(t *testing.T) {
	e := NewEngine(readability.NewScorer(), nil)
	report := e.Analyze(context.Background(), decentResume)

	require.Contains(t, report.Readability, "flesch_reading_ease")
	assert.Contains(t, report.Readability, "smog_index")
	assert.Contains(t, report.Readability, "avg_sentence_length")
}

func TestAnalyze_ReadabilityDegradesGracefully(t *testing.T) {
	e := NewEngine(readability.NewScorer(), nil)
	report := e.Analyze(context.Background(), "12345 !!!")

	assert.Empty(t, report.Readability)
}

func TestAnalyze_GrammarBackendUnavailable(t *testing.T) {
	e := NewEngine(nil, nil)
	report := e.Analyze(context.Background(), decentResume)

	assert.NotNil(t, report.GrammarIssues)
	assert.Empty(t, report.GrammarIssues)
}

func TestAnalyze_GrammarBackendErrorSwallowed(t *testing.T) {
	e := NewEngine(nil, &fakeChecker{err: errors.New("connection refused")})
	report := e.Analyze(context.Background(), decentResume)

	assert.Empty(t, report.GrammarIssues)
}

func TestAnalyze_GrammarBackendPanicSwallowed(t *testing.T) {
	e := NewEngine(nil, panicChecker{})

	assert.NotPanics(t, func() {
		report := e.Analyze(context.Background(), decentResume)
		assert.Empty(t, report.GrammarIssues)
	})
}

func TestAnalyze_GrammarIssuesDeduplicatedAndCapped(t *testing.T) {
	issues := []string{"dup", "dup", " dup ", ""}
	for i := 0; i < 20; i++ {
		issues = append(issues, strings.Repeat("x", i+1))
	}
	e := NewEngine(nil, &fakeChecker{issues: issues})

	report := e.Analyze(context.Background(), decentResume)

	assert.LessOrEqual(t, len(report.GrammarIssues), 10)
	seen := make(map[string]int)
	for _, msg := range report.GrammarIssues {
		seen[msg]++
		assert.Equal(t, 1, seen[msg], "issue %q duplicated", msg)
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	e := NewEngine(readability.NewScorer(), nil)

	assert.NotPanics(t, func() {
		report := e.Analyze(context.Background(), "")
		assert.NotNil(t, report)
		assert.NotEmpty(t, report.Suggestions)
	})
}
