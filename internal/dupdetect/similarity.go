package dupdetect

import (
	"math"
	"strings"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/nlp/measures/pairwise"
	"gonum.org/v1/gonum/mat"
)

// CosineSimilarity returns the cosine similarity of the two texts' term
// frequency vectors, in [0, 1]. Raw counts, not tf-idf: over a two-document
// corpus the tf-idf weight log((1+n)/(1+df)) is zero for every term both
// texts share, which zeroes the cosine for all inputs. Empty or
// vectorization-hostile input scores 0 rather than erroring; lexical overlap
// is a heuristic signal, not a hard check.
func CosineSimilarity(a, b string) float64 {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return 0
	}

	m, err := nlp.NewCountVectoriser().FitTransform(a, b)
	if err != nil {
		return 0
	}
	dense := mat.DenseCopyOf(m)
	sim := pairwise.CosineSimilarity(dense.ColView(0), dense.ColView(1))
	if math.IsNaN(sim) || sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}
