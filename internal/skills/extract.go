package skills

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/textutil"
)

// Extract scans free text for known skills and returns their canonical forms
// as a sorted, deduplicated slice. It tests every single token and every
// adjacent token pair against the default lexicon plus the canonicalized
// custom terms, so multi-word skills longer than two tokens are not detected.
// This is a lexicon lookup, not NER; polysemous tokens are not disambiguated.
func Extract(text string, custom []string) []string {
	toks := textutil.Tokenize(text)

	found := make(map[string]struct{})

	// Unigrams
	for _, t := range toks {
		c := Canonicalize(t)
		if _, ok := lexicon[c]; ok {
			found[c] = struct{}{}
		}
	}

	// Adjacent bigrams for phrases like "machine learning" or "data science".
	for i := 0; i+1 < len(toks); i++ {
		bigram := Canonicalize(toks[i] + " " + toks[i+1])
		if _, ok := lexicon[bigram]; ok {
			found[bigram] = struct{}{}
		}
	}

	// Caller-supplied custom terms are matched by canonicalized set
	// membership, same as the lexicon.
	if len(custom) > 0 {
		customSet := make(map[string]struct{}, len(custom))
		for _, s := range custom {
			customSet[Canonicalize(s)] = struct{}{}
		}
		for _, t := range toks {
			c := Canonicalize(t)
			if _, ok := customSet[c]; ok {
				found[c] = struct{}{}
			}
		}
		for i := 0; i+1 < len(toks); i++ {
			bigram := Canonicalize(toks[i] + " " + toks[i+1])
			if _, ok := customSet[bigram]; ok {
				found[bigram] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
