package analyze

import (
	"sort"
	"strings"

	"github.com/contentgap/contentgap"
)

// TermFrequencies tags every text, keeps tokens whose coarse tag is in
// accepted, lower-cases them, and counts occurrences per term. The result
// is ordered by descending count; equal counts keep the term's first
// occurrence order across the inputs.
func TermFrequencies(tagger contentgap.Tagger, texts []string, accepted ...contentgap.Tag) ([]contentgap.TermCount, error) {
	keep := make(map[contentgap.Tag]bool, len(accepted))
	for _, tag := range accepted {
		keep[tag] = true
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	position := 0
	for _, text := range texts {
		tokens, err := tagger.Tag(text)
		if err != nil {
			return nil, err
		}
		for _, token := range tokens {
			if !keep[token.Tag] {
				continue
			}
			term := strings.ToLower(token.Text)
			if _, ok := firstSeen[term]; !ok {
				firstSeen[term] = position
			}
			counts[term]++
			position++
		}
	}

	ranked := make([]contentgap.TermCount, 0, len(counts))
	for term, count := range counts {
		ranked = append(ranked, contentgap.TermCount{Term: term, Count: count})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Term] < firstSeen[ranked[j].Term]
	})
	return ranked, nil
}

// KeywordSet returns the lower-cased set of noun and proper-noun terms in
// text. This is the keyword extraction applied to the user's draft.
func KeywordSet(tagger contentgap.Tagger, text string) (map[string]bool, error) {
	tokens, err := tagger.Tag(text)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool)
	for _, token := range tokens {
		if token.Tag == contentgap.TagNoun || token.Tag == contentgap.TagProperNoun {
			set[strings.ToLower(token.Text)] = true
		}
	}
	return set, nil
}
