// Package prose provides a prose-based implementation of contentgap.Tagger.
package prose

import (
	"strings"

	"github.com/contentgap/contentgap"
	"github.com/jdkato/prose/v2"
)

// Ensure Tagger implements contentgap.Tagger at compile time.
var _ contentgap.Tagger = (*Tagger)(nil)

// Tagger tokenizes and tags English text using the prose language model.
// The model is read-only, so one Tagger constructed at startup can be
// shared by every component and every goroutine that tags text.
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Tag returns one TaggedToken per linguistic token of text, in order.
// Tagging is deterministic for identical input.
func (t *Tagger) Tag(text string) ([]contentgap.TaggedToken, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, contentgap.Errorf(contentgap.EINTERNAL, "tagging: %v", err)
	}

	tokens := doc.Tokens()
	tagged := make([]contentgap.TaggedToken, 0, len(tokens))
	for _, tok := range tokens {
		tagged = append(tagged, contentgap.TaggedToken{
			Text: tok.Text,
			Tag:  coarseTag(tok.Tag),
		})
	}
	return tagged, nil
}

// coarseTag collapses Penn Treebank tags into the coarse categories the
// analysis engine filters on.
func coarseTag(penn string) contentgap.Tag {
	switch {
	case penn == "NNP" || penn == "NNPS":
		return contentgap.TagProperNoun
	case strings.HasPrefix(penn, "NN"):
		return contentgap.TagNoun
	case strings.HasPrefix(penn, "VB"):
		return contentgap.TagVerb
	default:
		return contentgap.TagOther
	}
}
