package mock

import (
	"context"

	"github.com/contentgap/contentgap"
)

var _ contentgap.SearchProvider = (*SearchProvider)(nil)

// SearchProvider is a mock implementation of contentgap.SearchProvider.
type SearchProvider struct {
	TopResultsFn func(ctx context.Context, keyword string, limit int) ([]string, error)
}

func (s *SearchProvider) TopResults(ctx context.Context, keyword string, limit int) ([]string, error) {
	return s.TopResultsFn(ctx, keyword, limit)
}
