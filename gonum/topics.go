// Package gonum implements latent topic modeling with gonum linear algebra.
package gonum

import (
	"math"
	"sort"

	"github.com/contentgap/contentgap"
	"gonum.org/v1/gonum/mat"
)

// Default topic model dimensions.
const (
	DefaultTopics   = 5
	DefaultTopTerms = 10
)

// Ensure TopicModel implements contentgap.TopicModeler at compile time.
var _ contentgap.TopicModeler = (*TopicModel)(nil)

// TopicModel derives latent topics from a tokenized corpus by latent
// semantic indexing: a truncated SVD of the term-segment count matrix.
// The first left singular vector is the most prominent topic; its largest
// loadings (by magnitude, sign is arbitrary) are the topic's top terms.
type TopicModel struct{}

// NewTopicModel creates a new TopicModel.
func NewTopicModel() *TopicModel {
	return &TopicModel{}
}

// TopTerms returns the topn terms of the first of topics latent topics.
// Degenerate corpora (no segments, or fewer distinct terms than topics)
// return an empty slice and no error so callers can treat topic-derived
// keywords as absent without failing the run.
func (m *TopicModel) TopTerms(segments [][]string, topics, topn int) ([]string, error) {
	if topics <= 0 {
		topics = DefaultTopics
	}
	if topn <= 0 {
		topn = DefaultTopTerms
	}

	// Vocabulary in first-occurrence order keeps the factorization
	// deterministic for identical input.
	index := make(map[string]int)
	var terms []string
	segmentCount := 0
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		segmentCount++
		for _, token := range segment {
			if _, ok := index[token]; !ok {
				index[token] = len(terms)
				terms = append(terms, token)
			}
		}
	}
	if segmentCount == 0 || len(terms) < topics {
		return nil, nil
	}

	counts := mat.NewDense(len(terms), segmentCount, nil)
	column := 0
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		for _, token := range segment {
			row := index[token]
			counts.Set(row, column, counts.At(row, column)+1)
		}
		column++
	}

	var svd mat.SVD
	if ok := svd.Factorize(counts, mat.SVDThin); !ok {
		return nil, nil
	}
	var u mat.Dense
	svd.UTo(&u)

	// Only the first topic is consumed; later singular vectors exist but
	// nothing reads them.
	type loading struct {
		term   string
		weight float64
	}
	loadings := make([]loading, len(terms))
	for i, term := range terms {
		loadings[i] = loading{term: term, weight: math.Abs(u.At(i, 0))}
	}
	sort.SliceStable(loadings, func(i, j int) bool {
		return loadings[i].weight > loadings[j].weight
	})

	if topn > len(loadings) {
		topn = len(loadings)
	}
	top := make([]string, topn)
	for i := range top {
		top[i] = loadings[i].term
	}
	return top, nil
}
