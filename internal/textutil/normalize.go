// Package textutil provides text normalization and tokenization shared by the
// scoring and quality engines.
package textutil

import (
	"regexp"
	"strings"
)

// disallowed matches every run of characters outside the restricted alphabet.
// The alphabet keeps +, ., #, / and - so tech tokens like "c++", ".net" and
// "node.js" survive normalization intact.
var disallowed = regexp.MustCompile(`[^a-z0-9+.#/\- ]+`)

// multiSpace collapses runs of whitespace into a single space.
var multiSpace = regexp.MustCompile(`\s+`)

// Normalize lowercases s, replaces characters outside [a-z0-9+.#/- ] with
// spaces, collapses whitespace and trims. Empty input yields empty output.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = disallowed.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits the normalized form of s on single spaces.
// It returns nil for input that normalizes to the empty string.
func Tokenize(s string) []string {
	normalized := Normalize(s)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
