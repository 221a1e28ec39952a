package quality

import "regexp"

// atsPenaltyPerIssue is subtracted from 100 for every detected issue.
const atsPenaltyPerIssue = 15

// maxDistinctDateFormats is how many distinct date tokens are tolerated
// before formatting is considered inconsistent.
const maxDistinctDateFormats = 3

// Each ATS red flag is an independent, named rule over the raw text so that
// rules can be added or removed without touching the others.
var (
	nonASCIIPattern     = regexp.MustCompile(`[^\x00-\x7F]`)
	specialCharsPattern = regexp.MustCompile(`[^\w\s\-.,:;()\[\]/]`)
	pipeTablePattern    = regexp.MustCompile(`\|.*\|`)

	experienceHeaderPattern = regexp.MustCompile(`(?im)^(experience|work history|employment)`)
	educationHeaderPattern  = regexp.MustCompile(`(?im)^(education|academic)`)
	skillsHeaderPattern     = regexp.MustCompile(`(?im)^(skills|technical skills|technologies)`)

	datePattern = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}|\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\d{4}\s*[-–]\s*\d{4}\b`)
)

func hasNonASCII(text string) bool        { return nonASCIIPattern.MatchString(text) }
func hasSpecialChars(text string) bool    { return specialCharsPattern.MatchString(text) }
func hasPipeTable(text string) bool       { return pipeTablePattern.MatchString(text) }
func hasExperienceHeader(text string) bool { return experienceHeaderPattern.MatchString(text) }
func hasEducationHeader(text string) bool  { return educationHeaderPattern.MatchString(text) }
func hasSkillsHeader(text string) bool     { return skillsHeaderPattern.MatchString(text) }

// hasInconsistentDates reports whether more than maxDistinctDateFormats
// distinct date tokens appear in the text.
func hasInconsistentDates(text string) bool {
	matches := datePattern.FindAllString(text, -1)
	distinct := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		distinct[m] = struct{}{}
	}
	return len(distinct) > maxDistinctDateFormats
}

// ATSReport describes applicant-tracking-system parsing risks.
type ATSReport struct {
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
	ATSScore    int      `json:"ats_score"`
}

// AnalyzeATSOptimization flags formatting that commonly breaks automated
// resume parsers. The score starts at 100 and loses 15 points per issue,
// floored at 0.
func AnalyzeATSOptimization(resumeText string) *ATSReport {
	report := &ATSReport{
		Issues:      []string{},
		Suggestions: []string{},
	}

	if hasNonASCII(resumeText) {
		report.Issues = append(report.Issues, "Contains non-ASCII characters that may cause ATS issues")
		report.Suggestions = append(report.Suggestions, "Use standard ASCII characters only")
	}

	if hasSpecialChars(resumeText) {
		report.Issues = append(report.Issues, "Contains special characters that may confuse ATS")
		report.Suggestions = append(report.Suggestions, "Avoid excessive special characters")
	}

	if hasPipeTable(resumeText) {
		report.Issues = append(report.Issues, "Contains tables which may not parse well in ATS")
		report.Suggestions = append(report.Suggestions, "Convert tables to bullet points or simple text")
	}

	if !hasExperienceHeader(resumeText) {
		report.Issues = append(report.Issues, "Missing clear 'Experience' section header")
		report.Suggestions = append(report.Suggestions, "Use standard section headers: Experience, Education, Skills")
	}
	if !hasEducationHeader(resumeText) {
		report.Issues = append(report.Issues, "Missing clear 'Education' section header")
	}
	if !hasSkillsHeader(resumeText) {
		report.Issues = append(report.Issues, "Missing clear 'Skills' section header")
	}

	if hasInconsistentDates(resumeText) {
		report.Issues = append(report.Issues, "Inconsistent date formatting")
		report.Suggestions = append(report.Suggestions, "Use consistent date format (e.g., MM/YYYY)")
	}

	score := 100 - atsPenaltyPerIssue*len(report.Issues)
	if score < 0 {
		score = 0
	}
	report.ATSScore = score
	return report
}
