// Package readability computes sentence-level readability metrics used as an
// optional backend by the quality engine.
package readability

import (
	"math"
	"regexp"
	"strings"
)

// Metrics holds the readability figures for a document.
type Metrics struct {
	FleschReadingEase float64 `json:"flesch_reading_ease"`
	SMOGIndex         float64 `json:"smog_index"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

// Scorer computes Metrics for plain text. The zero value is ready to use.
type Scorer struct{}

// NewScorer returns a readability scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	wordPattern   = regexp.MustCompile(`[A-Za-z']+`)
	vowelGroups   = regexp.MustCompile(`[aeiouy]+`)
)

// Score computes readability metrics. ok is false when the text holds no
// scorable words, so callers can degrade to empty metrics without failing.
func (s *Scorer) Score(text string) (Metrics, bool) {
	sentences := countSentences(text)
	words := wordPattern.FindAllString(text, -1)
	if len(words) == 0 {
		return Metrics{}, false
	}
	if sentences == 0 {
		sentences = 1
	}

	totalSyllables := 0
	polysyllables := 0
	for _, w := range words {
		n := countSyllables(w)
		totalSyllables += n
		if n >= 3 {
			polysyllables++
		}
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(totalSyllables) / float64(len(words))

	flesch := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	smog := 1.043*math.Sqrt(float64(polysyllables)*30/float64(sentences)) + 3.1291

	return Metrics{
		FleschReadingEase: round1(flesch),
		SMOGIndex:         round1(smog),
		AvgSentenceLength: round1(wordsPerSentence),
	}, true
}

func countSentences(text string) int {
	n := 0
	for _, chunk := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(chunk) != "" {
			n++
		}
	}
	return n
}

// countSyllables approximates syllables as runs of vowels, with a silent-e
// adjustment. A word always counts at least one syllable.
func countSyllables(word string) int {
	w := strings.ToLower(word)
	groups := vowelGroups.FindAllString(w, -1)
	n := len(groups)
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && n > 1 {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
