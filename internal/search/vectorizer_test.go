package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermFrequency(t *testing.T) {
	tf := TermFrequency([]string{"wallet", "leather", "wallet", "red"})
	assert.Equal(t, map[string]int{"wallet": 2, "leather": 1, "red": 1}, tf)

	assert.Empty(t, TermFrequency(nil))
	assert.Empty(t, TermFrequency([]string{}))
}

func TestInverseDocFrequency(t *testing.T) {
	corpus := [][]string{
		{"wallet", "red", "wallet"},
		{"backpack", "blue"},
		{"wallet", "blue"},
	}
	idf := InverseDocFrequency(corpus)

	// df(wallet)=2 of 3; repeated occurrences in one doc count once.
	assert.InDelta(t, math.Log10(3.0/2.0), idf["wallet"], 1e-9)
	// df(backpack)=1.
	assert.InDelta(t, math.Log10(3.0), idf["backpack"], 1e-9)
	// Terms absent from the corpus get no entry.
	_, ok := idf["umbrella"]
	assert.False(t, ok)
}

func TestInverseDocFrequency_UbiquitousTermIsZero(t *testing.T) {
	corpus := [][]string{
		{"wallet", "red"},
		{"wallet", "blue"},
	}
	idf := InverseDocFrequency(corpus)
	assert.Zero(t, idf["wallet"])
}

func TestVectorize(t *testing.T) {
	idf := map[string]float64{"wallet": 0.5, "red": 1.0}
	vec := Vectorize(map[string]int{"wallet": 2, "red": 1}, idf)

	assert.InDelta(t, 1.0, vec["wallet"], 1e-9)
	assert.InDelta(t, 1.0, vec["red"], 1e-9)
}

func TestVectorize_DropsZeroAndUnknownTerms(t *testing.T) {
	idf := map[string]float64{"wallet": 0}
	vec := Vectorize(map[string]int{"wallet": 3, "umbrella": 1}, idf)

	// Ubiquitous (idf=0) and corpus-unknown terms carry no weight.
	assert.Empty(t, vec)
}

func TestVectorize_DropsNonFinite(t *testing.T) {
	idf := map[string]float64{"a": math.Inf(1), "b": math.NaN(), "c": 1.0}
	vec := Vectorize(map[string]int{"a": 1, "b": 1, "c": 1}, idf)

	assert.Equal(t, TermVector{"c": 1.0}, vec)
}

func TestCosineSimilarity_SelfIsOne(t *testing.T) {
	v := TermVector{"wallet": 0.3, "leather": 1.2, "red": 0.7}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
}

func TestCosineSimilarity_DisjointIsZero(t *testing.T) {
	a := TermVector{"wallet": 1.0}
	b := TermVector{"backpack": 1.0}
	assert.Zero(t, CosineSimilarity(a, b))
}

func TestCosineSimilarity_ZeroMagnitude(t *testing.T) {
	v := TermVector{"wallet": 1.0}
	assert.Zero(t, CosineSimilarity(v, TermVector{}))
	assert.Zero(t, CosineSimilarity(TermVector{}, v))
	assert.Zero(t, CosineSimilarity(TermVector{}, TermVector{}))
}

func TestCosineSimilarity_KnownValue(t *testing.T) {
	a := TermVector{"x": 1, "z": 1}
	b := TermVector{"y": 1, "z": 1}
	// dot=1, |a|=|b|=sqrt(2) -> 0.5
	assert.InDelta(t, 0.5, CosineSimilarity(a, b), 1e-9)
}
