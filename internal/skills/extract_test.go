package skills

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_UnigramsAndAliases(t *testing.T) {
	text := "Experienced React and Node.js developer, also know js and k8s"

	got := Extract(text, nil)

	assert.Contains(t, got, "react")
	assert.Contains(t, got, "node.js")
	assert.Contains(t, got, "javascript") // via "js" alias
	assert.Contains(t, got, "kubernetes") // via "k8s" alias
}

func TestExtract_Bigrams(t *testing.T) {
	got := Extract("Focused on machine learning and data science projects", nil)

	assert.Contains(t, got, "machine learning")
	assert.Contains(t, got, "data science")
}

func TestExtract_TrigramSkillsNotDetected(t *testing.T) {
	// Known limitation: the scan covers unigrams and adjacent bigrams only.
	got := Extract("worked with natural language processing daily", nil)

	assert.NotContains(t, got, "natural language processing")
}

func TestExtract_CustomSkills(t *testing.T) {
	got := Extract("Built integrations for SuperCRM and internal billing", []string{"SuperCRM", "internal billing"})

	assert.Contains(t, got, "supercrm")
	assert.Contains(t, got, "internal billing")
}

func TestExtract_CustomSkillsCanonicalized(t *testing.T) {
	// Custom terms go through the same alias resolution as the lexicon, so
	// a requirement of "js" matches a resume that says "javascript".
	got := Extract("Five years writing JavaScript", []string{"js"})

	assert.Contains(t, got, "javascript")
}

func TestExtract_PunctuationBoundaries(t *testing.T) {
	// Periods and hyphens survive normalization (they are part of tokens
	// like "node.js" and "scikit-learn"), so "Docker." and "Docker-based"
	// are distinct tokens that do not match the "docker" lexicon entry.
	// Comma-separated mentions match, commas being outside the alphabet.
	got := Extract("Shipped Docker. Ran Docker-based services.", nil)
	assert.NotContains(t, got, "docker")

	got = Extract("Shipped services with Python, Docker, and Kubernetes", nil)
	assert.Contains(t, got, "docker")
	assert.Contains(t, got, "python")
}

func TestExtract_SortedAndDeduplicated(t *testing.T) {
	got := Extract("python docker python docker aws python", nil)

	assert.Equal(t, []string{"aws", "docker", "python"}, got)
	assert.True(t, sort.StringsAreSorted(got))
}

func TestExtract_EmptyText(t *testing.T) {
	assert.Empty(t, Extract("", nil))
	assert.Empty(t, Extract("", []string{"python"}))
}
