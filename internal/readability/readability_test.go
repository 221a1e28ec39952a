package readability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_SimpleText(t *testing.T) {
	s := NewScorer()

	metrics, ok := s.Score("The cat sat on the mat. The dog ran fast.")
	require.True(t, ok)

	// Short common words read very easily.
	assert.Greater(t, metrics.FleschReadingEase, 80.0)
	assert.InDelta(t, 5.0, metrics.AvgSentenceLength, 0.01)
}

func TestScore_ComplexTextReadsHarder(t *testing.T) {
	s := NewScorer()

	simple, ok := s.Score("I write code. It works well. We ship it fast.")
	require.True(t, ok)
	complexText := "Organizational transformation necessitates comprehensive " +
		"reevaluation of interdepartmental communication methodologies and " +
		"infrastructural modernization initiatives throughout the enterprise."
	hard, ok := s.Score(complexText)
	require.True(t, ok)

	assert.Greater(t, simple.FleschReadingEase, hard.FleschReadingEase)
	assert.Greater(t, hard.SMOGIndex, simple.SMOGIndex)
}

func TestScore_NoWords(t *testing.T) {
	s := NewScorer()

	_, ok := s.Score("")
	assert.False(t, ok)

	_, ok = s.Score("12345 %%% !!!")
	assert.False(t, ok)
}

func TestScore_NoSentenceTerminators(t *testing.T) {
	s := NewScorer()

	metrics, ok := s.Score("resume bullet without a period")
	require.True(t, ok)
	assert.Equal(t, 5.0, metrics.AvgSentenceLength)
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"table", 2},
		{"developer", 4},
		{"code", 1},
		{"rhythm", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countSyllables(tt.word), "word %q", tt.word)
	}
}
