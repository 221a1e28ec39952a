package scoring

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/textutil"
)

// CosineSimilarity vectorizes the two documents with term-frequency-inverse-
// document-frequency weights fitted on exactly this pair and returns the
// cosine of the two vectors in [0, 1]. An empty document or disjoint
// vocabularies yield 0 rather than an error.
func CosineSimilarity(a, b string) float64 {
	tokensA := textutil.Tokenize(a)
	tokensB := textutil.Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	countsA := termCounts(tokensA)
	countsB := termCounts(tokensB)

	// Smoothed IDF over the two-document corpus: ln((1+n)/(1+df)) + 1.
	idf := func(term string) float64 {
		df := 0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		return math.Log(float64(1+2)/float64(1+df)) + 1
	}

	var dot, normA, normB float64
	seen := make(map[string]struct{}, len(countsA)+len(countsB))
	for term := range countsA {
		seen[term] = struct{}{}
	}
	for term := range countsB {
		seen[term] = struct{}{}
	}
	for term := range seen {
		w := idf(term)
		wa := float64(countsA[term]) * w
		wb := float64(countsB[term]) * w
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Guard against floating point drift outside [0, 1].
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
