// Package text turns raw report text into normalized token sequences
// for the matching engine.
package text

import (
	"strings"
)

// punctuation is stripped outright (replaced with nothing, not a
// space), so "don't" becomes "dont".
const punctuation = ".,/#!$%^&*;:{}=-_`~()'"

// Normalizer converts free text into a canonical token sequence:
// case-fold, punctuation strip, whitespace split, stopword removal,
// synonym expansion. The tables are immutable after construction so a
// Normalizer is safe for concurrent use.
type Normalizer struct {
	stopwords map[string]struct{}
	synonyms  map[string][]string
	stripper  *strings.Replacer
}

// NewNormalizer returns a Normalizer with the default stopword and
// synonym tables.
func NewNormalizer() *Normalizer {
	return NewNormalizerWith(DefaultStopwords(), DefaultSynonyms())
}

// NewNormalizerWith builds a Normalizer around the given tables. The
// maps are used as-is and must not be mutated afterwards.
func NewNormalizerWith(stopwords map[string]struct{}, synonyms map[string][]string) *Normalizer {
	pairs := make([]string, 0, len(punctuation)*2)
	for _, r := range punctuation {
		pairs = append(pairs, string(r), "")
	}
	return &Normalizer{
		stopwords: stopwords,
		synonyms:  synonyms,
		stripper:  strings.NewReplacer(pairs...),
	}
}

// Normalize runs the full pipeline. Empty or whitespace-only input
// yields an empty (nil) token sequence; callers treat that as "no
// signal", never as an error.
func (n *Normalizer) Normalize(raw string) []string {
	if raw == "" {
		return nil
	}

	stripped := n.stripper.Replace(strings.ToLower(raw))

	var tokens []string
	for _, tok := range strings.Fields(stripped) {
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	// Synonym expansion appends, never replaces: every surviving token
	// stays in place and its synonyms (if any) join the stream.
	expanded := tokens
	for _, tok := range tokens {
		if syns, ok := n.synonyms[tok]; ok {
			expanded = append(expanded, syns...)
		}
	}
	return expanded
}
