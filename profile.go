package contentgap

// TermCount pairs a term with its occurrence count.
type TermCount struct {
	Term  string
	Count int
}

// KeywordProfile is the ranked keyword set derived from a competitor
// corpus. Built once per corpus; immutable.
type KeywordProfile struct {
	// FrequencyRanked is ordered by descending count; equal counts keep
	// the term's first occurrence order across the corpus. Terms are
	// lower-cased and unique.
	FrequencyRanked []TermCount

	// TopicTerms are the top terms of the most prominent latent topic,
	// in the topic model's own order. Empty when the corpus is too small
	// to model.
	TopicTerms []string
}

// TopicModeler derives latent topics from a tokenized corpus.
type TopicModeler interface {
	// TopTerms builds topics latent topics over the segments and returns
	// the topn top terms of the first topic. Degenerate corpora (empty,
	// or with fewer distinct terms than topics) return an empty slice
	// and no error.
	TopTerms(segments [][]string, topics, topn int) ([]string, error)
}
