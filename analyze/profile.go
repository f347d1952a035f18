package analyze

import (
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/contentgap/contentgap"
)

// Profile dimensions.
const (
	profileTopTerms    = 20
	topicModelTopics   = 5
	topicModelTopTerms = 10
)

// ProfileBuilder derives a KeywordProfile from a collection of extracted
// pages. Building a profile tags and factorizes the whole corpus, so
// profiles are memoized per builder, keyed on a fingerprint of the corpus
// content rather than the page addresses. The cache lives as long as the
// builder; a changed corpus always computes a fresh profile.
type ProfileBuilder struct {
	Tagger contentgap.Tagger
	Topics contentgap.TopicModeler

	mu    sync.Mutex
	cache map[uint64]*contentgap.KeywordProfile
}

// NewProfileBuilder creates a ProfileBuilder using the given tagger and
// topic modeler.
func NewProfileBuilder(tagger contentgap.Tagger, topics contentgap.TopicModeler) *ProfileBuilder {
	return &ProfileBuilder{
		Tagger: tagger,
		Topics: topics,
		cache:  make(map[uint64]*contentgap.KeywordProfile),
	}
}

// Build returns the keyword profile for the pages, which must be in
// competitor ranking order. Frequency ranking covers nouns, proper nouns
// and verbs, keeping the top 20 terms. Topic terms come from the most
// prominent latent topic over the same corpus, or stay empty when the
// corpus is too small to model.
func (b *ProfileBuilder) Build(pages []*contentgap.PageContent) (*contentgap.KeywordProfile, error) {
	if len(pages) == 0 {
		return nil, contentgap.Errorf(contentgap.EEMPTYCORPUS, "no pages to analyze")
	}

	bodies := make([]string, len(pages))
	for i, page := range pages {
		bodies[i] = page.BodyText
	}
	corpus := strings.Join(bodies, " ")

	key := xxhash.Sum64String(corpus)
	b.mu.Lock()
	if b.cache == nil {
		b.cache = make(map[uint64]*contentgap.KeywordProfile)
	}
	if cached, ok := b.cache[key]; ok {
		b.mu.Unlock()
		return cached, nil
	}
	b.mu.Unlock()

	ranked, err := TermFrequencies(b.Tagger, []string{corpus},
		contentgap.TagNoun, contentgap.TagProperNoun, contentgap.TagVerb)
	if err != nil {
		return nil, err
	}
	if len(ranked) > profileTopTerms {
		ranked = ranked[:profileTopTerms]
	}

	topicTerms, err := b.Topics.TopTerms(segmentCorpus(corpus), topicModelTopics, topicModelTopTerms)
	if err != nil {
		return nil, err
	}

	profile := &contentgap.KeywordProfile{
		FrequencyRanked: ranked,
		TopicTerms:      topicTerms,
	}

	b.mu.Lock()
	b.cache[key] = profile
	b.mu.Unlock()
	return profile, nil
}

// segmentCorpus splits the corpus on the literal ". " sequence and
// whitespace-tokenizes each lower-cased segment. A coarse stand-in for
// sentence boundary detection, kept as the documented policy.
func segmentCorpus(corpus string) [][]string {
	raw := strings.Split(corpus, ". ")
	segments := make([][]string, 0, len(raw))
	for _, segment := range raw {
		tokens := strings.Fields(strings.ToLower(segment))
		if len(tokens) == 0 {
			continue
		}
		segments = append(segments, tokens)
	}
	return segments
}
