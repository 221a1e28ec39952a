package scoring

import (
	"regexp"
	"strconv"
)

// yearPattern matches statements like "5 years", "3+ yrs" or "2.5 years".
var yearPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)`)

// MaxYearsOfExperience returns the largest number of years stated anywhere in
// the text. Resumes often mention several figures (per-job and total); the
// maximum is the candidate's best-supported claim. ok is false when the text
// states no experience at all.
func MaxYearsOfExperience(text string) (years float64, ok bool) {
	for _, m := range yearPattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if !ok || v > years {
			years = v
			ok = true
		}
	}
	return years, ok
}
