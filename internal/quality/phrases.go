package quality

import "regexp"

// actionVerbs are strong verbs expected somewhere in a good resume.
var actionVerbs = []string{
	"built", "developed", "designed", "led", "optimized", "implemented",
	"launched", "automated", "reduced", "increased", "improved",
	"delivered", "owned", "created", "engineered", "constructed",
	"initiated", "executed", "analyzed", "produced", "managed", "mentored",
	"collaborated", "pioneered", "streamlined", "transformed", "generated",
	"identified", "resolved", "researched", "trained", "verified",
	"conceptualized",
}

// genericPhrases are clichés that should be replaced with impact-focused
// wording. Only the first occurrence is reported.
var genericPhrases = []string{
	"responsible for", "worked on", "helped with", "involved in",
	"participated in", "hardworking", "team player", "result-oriented",
	"self-starter", "duties included", "tasked with",
	"a strong communicator", "goal-oriented", "flexible",
}

// sectionNames are canonical resume section names checked as substrings of
// the normalized text.
var sectionNames = []string{
	"education", "experience", "projects", "skills", "certifications",
	"summary", "achievements", "objective", "internships", "work",
}

// passiveHint matches auxiliary-verb + past-participle constructions. It is
// a heuristic, not a parser; false positives and negatives are expected.
var passiveHint = regexp.MustCompile(`(?i)\b(?:was|were|is|are|been|being|be)\b\s+\w+ed\b`)

var (
	percentPattern = regexp.MustCompile(`\b\d+%`)
	digitPattern   = regexp.MustCompile(`\b\d+\b`)
)
