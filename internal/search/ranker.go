package search

import (
	"sort"
)

// RankedResult pairs a corpus document (by its index in the input
// slice) with its cosine similarity to the query.
type RankedResult struct {
	Index int
	Score float64
}

// Rank scores every document vector against the query, drops results at
// or below minScore, and sorts the rest descending. The sort is stable,
// so ties keep corpus order and the output is deterministic for a fixed
// input.
func Rank(query TermVector, docs []TermVector, minScore float64) []RankedResult {
	var results []RankedResult
	for i, doc := range docs {
		score := CosineSimilarity(query, doc)
		if score > minScore {
			results = append(results, RankedResult{Index: i, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
