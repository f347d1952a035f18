// Package slog provides logging decorators for contentgap interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/contentgap/contentgap"
)

// Ensure LoggingFetcher implements contentgap.Fetcher.
var _ contentgap.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   contentgap.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next contentgap.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	markup, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch", "url", url, "err", err)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(markup),
		"duration", time.Since(begin),
	)
	return markup, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
