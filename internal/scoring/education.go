package scoring

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/textutil"
)

// Education score tiers. The scorer is a three-tier heuristic, never a
// continuous value.
const (
	EducationFullMatch    = 100
	EducationPartialMatch = 70
	EducationNoMatch      = 40
)

// degreeKeywords are degree-level tokens searched as substrings of the
// normalized resume text.
var degreeKeywords = []string{
	"bsc", "b.tech", "btech", "be", "msc", "m.tech", "mtech", "ms", "phd",
	"bachelor", "master", "doctorate", "associate", "diploma",
}

// fieldKeywords are common fields of study.
var fieldKeywords = []string{
	"computer science", "information technology", "data science",
	"software engineering", "electronics", "electrical", "mathematics",
	"statistics", "ai", "artificial intelligence", "machine learning",
	"cyber security", "network engineering", "cloud computing",
	"business administration", "finance", "marketing", "design",
	"physics", "chemistry",
}

// EducationScore keyword-matches the resume against the required education.
// 100 requires all three: a stated requirement, a field match and a degree
// keyword. Either signal alone scores 70, neither scores 40.
func EducationScore(required []string, resumeText string) int {
	r := textutil.Normalize(resumeText)

	reqEdus := make([]string, 0, len(required))
	for _, e := range required {
		reqEdus = append(reqEdus, textutil.Normalize(e))
	}

	hasDegree := false
	for _, d := range degreeKeywords {
		if strings.Contains(r, d) {
			hasDegree = true
			break
		}
	}

	fieldMatch := false
	for _, f := range fieldKeywords {
		if strings.Contains(r, f) {
			fieldMatch = true
			break
		}
	}
	if !fieldMatch {
		for _, e := range reqEdus {
			if e != "" && strings.Contains(r, e) {
				fieldMatch = true
				break
			}
		}
	}

	switch {
	case len(reqEdus) > 0 && fieldMatch && hasDegree:
		return EducationFullMatch
	case fieldMatch || hasDegree:
		return EducationPartialMatch
	default:
		return EducationNoMatch
	}
}
