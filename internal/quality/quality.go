// Package quality inspects a resume in isolation for structural and
// stylistic weaknesses. Every sub-analysis is a pure function over the text;
// the optional readability and grammar backends degrade to empty results on
// any failure.
package quality

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/grammar"
	"github.com/jonathan/resume-analyzer/internal/readability"
	"github.com/jonathan/resume-analyzer/internal/textutil"
)

// maxGrammarIssues caps the number of deduplicated grammar messages kept.
const maxGrammarIssues = 10

// maxMissingSections caps how many missing sections one suggestion names.
const maxMissingSections = 3

// grammarTimeout bounds the grammar backend call so a hung backend cannot
// block the rest of the analysis.
const grammarTimeout = 15 * time.Second

// ReadabilityScorer is the capability contract for the optional readability
// backend. ok=false means the text could not be scored.
type ReadabilityScorer interface {
	Score(text string) (readability.Metrics, bool)
}

// Report is the outcome of the base quality analysis.
type Report struct {
	Readability   map[string]float64 `json:"readability"`
	GrammarIssues []string           `json:"grammar_issues"`
	Suggestions   []string           `json:"suggestions"`
}

// Engine runs the quality heuristics. Both backends are optional; a nil
// readability scorer or grammar checker simply disables that sub-analysis.
type Engine struct {
	readability ReadabilityScorer
	grammar     grammar.Checker
}

// NewEngine returns an engine with the given optional backends.
func NewEngine(rs ReadabilityScorer, gc grammar.Checker) *Engine {
	return &Engine{readability: rs, grammar: gc}
}

// Analyze produces writing-quality feedback for a resume. It never fails:
// backend errors are swallowed and the corresponding report fields are left
// empty.
func (e *Engine) Analyze(ctx context.Context, resumeText string) *Report {
	tips := []string{}
	textNorm := textutil.Normalize(resumeText)

	// Section presence
	var missing []string
	for _, s := range sectionNames {
		if !strings.Contains(textNorm, s) {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		shown := missing
		if len(shown) > maxMissingSections {
			shown = shown[:maxMissingSections]
		}
		tips = append(tips, fmt.Sprintf("Consider adding sections: %s.", strings.Join(shown, ", ")))
	}

	// Action verbs
	hasVerb := false
	for _, av := range actionVerbs {
		if strings.Contains(textNorm, av) {
			hasVerb = true
			break
		}
	}
	if !hasVerb {
		tips = append(tips, "Use strong action verbs (e.g., built, optimized, implemented) at bullet starts.")
	}

	// Generic phrasing, first hit only
	for _, gp := range genericPhrases {
		if strings.Contains(textNorm, gp) {
			tips = append(tips, fmt.Sprintf("Replace generic phrase '%s' with specific, impact-focused wording.", gp))
			break
		}
	}

	// Passive voice hint
	if passiveHint.MatchString(resumeText) {
		tips = append(tips, "Reduce passive voice; prefer active constructions (e.g., 'Designed X' vs 'X was designed').")
	}

	// Quantification
	if !percentPattern.MatchString(resumeText) && !digitPattern.MatchString(resumeText) {
		tips = append(tips, "Quantify impact with numbers (e.g., 'reduced latency by 35%').")
	}

	// Readability (optional backend)
	readabilityMetrics := map[string]float64{}
	if e.readability != nil {
		if m, ok := e.readability.Score(resumeText); ok {
			readabilityMetrics["flesch_reading_ease"] = m.FleschReadingEase
			readabilityMetrics["smog_index"] = m.SMOGIndex
			readabilityMetrics["avg_sentence_length"] = m.AvgSentenceLength
			tips = append(tips, "Aim for concise bullets (typically 10-20 words). Avoid long sentences.")
		}
	}

	return &Report{
		Readability:   readabilityMetrics,
		GrammarIssues: e.grammarIssues(ctx, resumeText),
		Suggestions:   tips,
	}
}

// grammarIssues runs the optional grammar backend and returns up to
// maxGrammarIssues deduplicated messages. Any backend failure, including a
// panic, yields an empty slice; errors never cross this boundary.
func (e *Engine) grammarIssues(ctx context.Context, text string) []string {
	issues := []string{}
	if e.grammar == nil {
		return issues
	}

	ctx, cancel := context.WithTimeout(ctx, grammarTimeout)
	defer cancel()

	raw, err := checkSafely(ctx, e.grammar, text)
	if err != nil {
		return issues
	}

	seen := make(map[string]struct{}, len(raw))
	for _, msg := range raw {
		msg = strings.TrimSpace(msg)
		if msg == "" {
			continue
		}
		if _, dup := seen[msg]; dup {
			continue
		}
		seen[msg] = struct{}{}
		issues = append(issues, msg)
		if len(issues) >= maxGrammarIssues {
			break
		}
	}
	return issues
}

// checkSafely isolates the backend call so a panicking checker is reported
// as an error instead of taking down the analysis.
func checkSafely(ctx context.Context, gc grammar.Checker, text string) (issues []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			issues = nil
			err = fmt.Errorf("grammar backend panicked: %v", r)
		}
	}()
	return gc.Check(ctx, text)
}
