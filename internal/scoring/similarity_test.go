package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity_IdenticalDocuments(t *testing.T) {
	sim := CosineSimilarity("python docker kubernetes", "python docker kubernetes")
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineSimilarity_DisjointDocuments(t *testing.T) {
	sim := CosineSimilarity("python docker", "cooking gardening")
	assert.Equal(t, 0.0, sim)
}

func TestCosineSimilarity_PartialOverlap(t *testing.T) {
	sim := CosineSimilarity("python docker aws", "python docker gcp")
	assert.Greater(t, sim, 0.0)
	assert.Less(t, sim, 1.0)
}

func TestCosineSimilarity_EmptyDocuments(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity("", "python developer"))
	assert.Equal(t, 0.0, CosineSimilarity("python developer", ""))
	assert.Equal(t, 0.0, CosineSimilarity("", ""))
	assert.Equal(t, 0.0, CosineSimilarity("???", "!!!"))
}

func TestCosineSimilarity_MoreOverlapScoresHigher(t *testing.T) {
	req := "python docker kubernetes aws terraform"
	strong := CosineSimilarity(req, "python docker kubernetes aws engineer")
	weak := CosineSimilarity(req, "python enthusiast, mostly frontend work")
	assert.Greater(t, strong, weak)
}

func TestCosineSimilarity_Bounded(t *testing.T) {
	docs := []string{"", "a", "go go go", "x y z", "python python docker"}
	for _, a := range docs {
		for _, b := range docs {
			sim := CosineSimilarity(a, b)
			assert.GreaterOrEqual(t, sim, 0.0)
			assert.LessOrEqual(t, sim, 1.0)
		}
	}
}
