package quality

import (
	"fmt"
	"math"
	"strings"
)

// Keyword density thresholds, in percent of total word count.
const (
	minOverallDensity    = 1.0
	maxOverallDensity    = 3.0
	maxPerKeywordDensity = 2.0
)

// KeywordStat holds occurrence data for one target keyword.
type KeywordStat struct {
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// KeywordReport describes how target keywords are distributed in the text.
type KeywordReport struct {
	KeywordCounts   map[string]KeywordStat `json:"keyword_counts"`
	OverallDensity  float64                `json:"overall_density"`
	Recommendations []string               `json:"recommendations"`
}

// AnalyzeKeywordDensity counts case-insensitive occurrences of each target
// keyword and flags an overall density below 1% (too sparse) or above 3%
// (keyword stuffing), plus individual keywords that are absent or overused.
func AnalyzeKeywordDensity(resumeText string, targetKeywords []string) *KeywordReport {
	textLower := strings.ToLower(resumeText)
	wordCount := len(strings.Fields(textLower))

	report := &KeywordReport{
		KeywordCounts:   make(map[string]KeywordStat, len(targetKeywords)),
		Recommendations: []string{},
	}

	total := 0
	for _, keyword := range targetKeywords {
		count := strings.Count(textLower, strings.ToLower(keyword))
		density := 0.0
		if wordCount > 0 {
			density = float64(count) / float64(wordCount) * 100
		}
		report.KeywordCounts[keyword] = KeywordStat{
			Count:   count,
			Density: round2(density),
		}
		total += count
	}

	if wordCount > 0 {
		report.OverallDensity = round2(float64(total) / float64(wordCount) * 100)
	}

	if report.OverallDensity < minOverallDensity {
		report.Recommendations = append(report.Recommendations, "Increase keyword density - aim for 1-2%")
	} else if report.OverallDensity > maxOverallDensity {
		report.Recommendations = append(report.Recommendations, "Reduce keyword density - avoid keyword stuffing")
	}

	for _, keyword := range targetKeywords {
		stat := report.KeywordCounts[keyword]
		if stat.Count == 0 {
			report.Recommendations = append(report.Recommendations, fmt.Sprintf("Consider adding '%s' if relevant", keyword))
		} else if stat.Density > maxPerKeywordDensity {
			report.Recommendations = append(report.Recommendations, fmt.Sprintf("Reduce overuse of '%s'", keyword))
		}
	}

	return report
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
