package quality

import (
	"context"
	"math"
)

// summaryPresenceBonus is the score contribution of a present professional
// summary in the composite analysis.
const summaryPresenceBonus = 80

// Recommendations carries the fixed advice lists appended to every
// comprehensive report. The lists are static, not derived from the analysis.
type Recommendations struct {
	Priority  []string `json:"priority"`
	QuickWins []string `json:"quick_wins"`
}

// ComprehensiveReport aggregates every quality heuristic into one record.
type ComprehensiveReport struct {
	OverallScore    float64          `json:"overall_score"`
	QualityAnalysis *Report          `json:"quality_analysis"`
	ContactAnalysis *ContactReport   `json:"contact_analysis"`
	SummaryAnalysis *SummaryReport   `json:"summary_analysis"`
	ATSAnalysis     *ATSReport       `json:"ats_analysis"`
	KeywordAnalysis *KeywordReport   `json:"keyword_analysis,omitempty"`
	Recommendations *Recommendations `json:"recommendations"`
}

// Comprehensive runs every sub-analysis and combines them into a single
// report. targetSkills is optional; when empty, keyword analysis is skipped
// and excluded from the composite score.
func (e *Engine) Comprehensive(ctx context.Context, resumeText string, targetSkills []string) *ComprehensiveReport {
	report := &ComprehensiveReport{
		QualityAnalysis: e.Analyze(ctx, resumeText),
		ContactAnalysis: AnalyzeContactInfo(resumeText),
		SummaryAnalysis: AnalyzeProfessionalSummary(resumeText),
		ATSAnalysis:     AnalyzeATSOptimization(resumeText),
	}

	if len(targetSkills) > 0 {
		report.KeywordAnalysis = AnalyzeKeywordDensity(resumeText, targetSkills)
	}

	// Composite score: readability-derived value (flesch/10), contact
	// completeness, ATS score and a binary summary-presence bonus, plus the
	// keyword-density score when keywords were supplied.
	scores := []float64{
		report.QualityAnalysis.Readability["flesch_reading_ease"] / 10,
		float64(report.ContactAnalysis.CompletenessScore),
		float64(report.ATSAnalysis.ATSScore),
	}
	if report.SummaryAnalysis.Found {
		scores = append(scores, summaryPresenceBonus)
	} else {
		scores = append(scores, 0)
	}
	if report.KeywordAnalysis != nil {
		scores = append(scores, math.Min(100, report.KeywordAnalysis.OverallDensity*50))
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	report.OverallScore = math.Round(sum/float64(len(scores))*10) / 10

	report.Recommendations = &Recommendations{
		Priority: []string{
			"Focus on quantifiable achievements",
			"Use strong action verbs",
			"Optimize for ATS compatibility",
			"Include relevant keywords naturally",
		},
		QuickWins: []string{
			"Add missing contact information",
			"Include professional summary",
			"Use consistent formatting",
			"Proofread for grammar errors",
		},
	}
	return report
}
