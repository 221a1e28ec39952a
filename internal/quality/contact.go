package quality

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// technicalRoleKeywords gate the GitHub suggestion: its absence is only an
// issue for technical candidates.
var technicalRoleKeywords = []string{"developer", "programmer", "engineer", "coding"}

// pointsPerContactField steps the completeness score in increments of 25.
const pointsPerContactField = 25

// ContactReport describes contact-information completeness.
type ContactReport struct {
	Email             bool     `json:"email"`
	Phone             bool     `json:"phone"`
	LinkedIn          bool     `json:"linkedin"`
	GitHub            bool     `json:"github"`
	Issues            []string `json:"issues"`
	CompletenessScore int      `json:"completeness_score"`
}

// AnalyzeContactInfo detects email, US-style phone, LinkedIn and GitHub
// profile links and scores completeness as 25 points per present field.
func AnalyzeContactInfo(resumeText string) *ContactReport {
	report := &ContactReport{
		Email:    emailPattern.MatchString(resumeText),
		Phone:    phonePattern.MatchString(resumeText),
		LinkedIn: linkedinPattern.MatchString(resumeText),
		GitHub:   githubPattern.MatchString(resumeText),
		Issues:   []string{},
	}

	if !report.Email {
		report.Issues = append(report.Issues, "Missing email address")
	}
	if !report.Phone {
		report.Issues = append(report.Issues, "Missing phone number")
	}
	if !report.LinkedIn {
		report.Issues = append(report.Issues, "Consider adding LinkedIn profile")
	}
	if !report.GitHub && mentionsTechnicalRole(resumeText) {
		report.Issues = append(report.Issues, "Consider adding GitHub profile for technical roles")
	}

	for _, present := range []bool{report.Email, report.Phone, report.LinkedIn, report.GitHub} {
		if present {
			report.CompletenessScore += pointsPerContactField
		}
	}
	return report
}

func mentionsTechnicalRole(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range technicalRoleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
