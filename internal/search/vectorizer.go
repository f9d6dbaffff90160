// Package search implements the TF-IDF weighting and cosine ranking
// behind report matching. Vectors are ephemeral: they are recomputed
// per request against whatever corpus snapshot was fetched, because
// the report set changes continuously.
package search

import (
	"math"
)

// TermVector maps a term to its non-negative TF-IDF weight within one
// corpus snapshot.
type TermVector map[string]float64

// TermFrequency counts raw term occurrences in one document. Counts
// are not normalized by document length.
func TermFrequency(tokens []string) map[string]int {
	if len(tokens) == 0 {
		return map[string]int{}
	}
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}

// InverseDocFrequency computes idf(t) = log10(N / df(t)) for every term
// observed in the corpus. A term present in every document gets
// idf = 0, discounting ubiquitous vocabulary. Terms never observed in
// the corpus have no entry.
func InverseDocFrequency(corpus [][]string) map[string]float64 {
	n := float64(len(corpus))
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log10(n / float64(count))
	}
	return idf
}

// Vectorize weighs a document's term frequencies against corpus IDF:
// weight(t) = tf(t) * idf(t). Terms without an IDF entry weigh zero and
// are dropped, as is anything non-finite from degenerate input.
func Vectorize(tf map[string]int, idf map[string]float64) TermVector {
	vec := make(TermVector, len(tf))
	for term, count := range tf {
		w := float64(count) * idf[term]
		if w == 0 || math.IsInf(w, 0) || math.IsNaN(w) {
			continue
		}
		vec[term] = w
	}
	return vec
}

// CosineSimilarity computes the normalized dot product over the union
// of terms in either vector. By convention the result is 0 whenever
// either magnitude is zero: no shared vocabulary ranks as zero
// similarity rather than dividing by zero.
func CosineSimilarity(a, b TermVector) float64 {
	var dot, magA, magB float64
	for term, wa := range a {
		magA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		magB += wb * wb
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
