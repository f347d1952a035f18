package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/contentgap/contentgap"
)

// Ensure LoggingSearchProvider implements contentgap.SearchProvider.
var _ contentgap.SearchProvider = (*LoggingSearchProvider)(nil)

// LoggingSearchProvider wraps a SearchProvider with query logging.
type LoggingSearchProvider struct {
	next   contentgap.SearchProvider
	logger *slog.Logger
}

// NewLoggingSearchProvider creates a new LoggingSearchProvider.
func NewLoggingSearchProvider(next contentgap.SearchProvider, logger *slog.Logger) *LoggingSearchProvider {
	return &LoggingSearchProvider{next: next, logger: logger}
}

// TopResults delegates to the wrapped provider and logs the operation.
func (s *LoggingSearchProvider) TopResults(ctx context.Context, keyword string, limit int) (addresses []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"keyword", keyword,
			"count", len(addresses),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.TopResults(ctx, keyword, limit)
}
