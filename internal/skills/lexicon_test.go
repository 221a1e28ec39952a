package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_Aliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"js", "javascript"},
		{"JS", "javascript"},
		{"  k8s ", "kubernetes"},
		{"go", "golang"},
		{"ml", "machine learning"},
		{"postgresql", "postgres"},
		{"react", "react"},
		{"unknown-skill", "unknown-skill"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Canonicalize(tt.in), "Canonicalize(%q)", tt.in)
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{"js", "go", "ml", "tf", "python", "K8S", "big data", "weird token"}
	for _, in := range inputs {
		once := Canonicalize(in)
		assert.Equal(t, once, Canonicalize(once), "Canonicalize not idempotent for %q", in)
	}
}

func TestCanonicalize_Stable(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "kubernetes", Canonicalize("k8s"))
	}
}

func TestInLexicon(t *testing.T) {
	assert.True(t, InLexicon("python"))
	assert.True(t, InLexicon("js"), "aliases resolve before lookup")
	assert.True(t, InLexicon("machine learning"))
	assert.False(t, InLexicon("underwater basket weaving"))
}

func TestLexiconSize_HasHundredsOfEntries(t *testing.T) {
	assert.Greater(t, LexiconSize(), 250)
}
