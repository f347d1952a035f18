package mock

import "github.com/contentgap/contentgap"

var _ contentgap.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of contentgap.Extractor.
type Extractor struct {
	ExtractFn func(markup, address string) (*contentgap.PageContent, error)
}

func (e *Extractor) Extract(markup, address string) (*contentgap.PageContent, error) {
	return e.ExtractFn(markup, address)
}
