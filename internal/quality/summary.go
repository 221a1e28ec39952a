package quality

import (
	"regexp"
	"strings"
)

// Professional summary length bounds, in words.
const (
	minSummaryWords = 20
	maxSummaryWords = 100
)

// summaryHeading locates a summary/objective/profile heading.
var summaryHeading = regexp.MustCompile(`(?i)\b(?:professional\s+summary|summary|profile|objective|about me)\b[:\s]*`)

// summaryTerminator ends the summary block at a blank line or the next
// line that starts a new section (leading capital letter).
var summaryTerminator = regexp.MustCompile(`\n\s*\n|\n[A-Z]`)

// quantifiableClaim matches numbers tied to impact (percentages, years,
// people, projects, dollars).
var quantifiableClaim = regexp.MustCompile(`\b\d+%|\b\d+\s*(?:years?|months?|people|projects?|dollars?|%)`)

// SummaryReport describes the professional summary block, if one was found.
type SummaryReport struct {
	Found       bool     `json:"found"`
	Text        string   `json:"text"`
	WordCount   int      `json:"word_count"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// AnalyzeProfessionalSummary locates the summary block and validates its
// length, verb strength and quantification. A missing block is flagged.
func AnalyzeProfessionalSummary(resumeText string) *SummaryReport {
	report := &SummaryReport{
		Issues:      []string{},
		Suggestions: []string{},
	}

	loc := summaryHeading.FindStringIndex(resumeText)
	if loc == nil {
		report.Issues = append(report.Issues, "Missing professional summary section")
		report.Suggestions = append(report.Suggestions, "Add a compelling 2-3 line professional summary")
		return report
	}

	rest := resumeText[loc[1]:]
	if term := summaryTerminator.FindStringIndex(rest); term != nil {
		rest = rest[:term[0]]
	}
	summaryText := strings.TrimSpace(rest)

	report.Found = true
	report.Text = summaryText
	report.WordCount = len(strings.Fields(summaryText))

	if report.WordCount < minSummaryWords {
		report.Issues = append(report.Issues, "Professional summary too short")
		report.Suggestions = append(report.Suggestions, "Expand summary to 20-50 words")
	} else if report.WordCount > maxSummaryWords {
		report.Issues = append(report.Issues, "Professional summary too long")
		report.Suggestions = append(report.Suggestions, "Keep summary concise (20-50 words)")
	}

	summaryLower := strings.ToLower(summaryText)
	hasVerb := false
	for _, verb := range actionVerbs {
		if strings.Contains(summaryLower, verb) {
			hasVerb = true
			break
		}
	}
	if !hasVerb {
		report.Suggestions = append(report.Suggestions, "Use strong action verbs in summary")
	}

	if !quantifiableClaim.MatchString(summaryText) {
		report.Suggestions = append(report.Suggestions, "Include quantifiable achievements in summary")
	}

	return report
}
