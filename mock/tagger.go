package mock

import "github.com/contentgap/contentgap"

var _ contentgap.Tagger = (*Tagger)(nil)

// Tagger is a mock implementation of contentgap.Tagger.
type Tagger struct {
	TagFn func(text string) ([]contentgap.TaggedToken, error)
}

func (t *Tagger) Tag(text string) ([]contentgap.TaggedToken, error) {
	return t.TagFn(text)
}
