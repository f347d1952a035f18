package contentgap

import "context"

// PageContent holds the structured text extracted from one competitor page.
// It is created once per successfully fetched page and never mutated.
type PageContent struct {
	// Address identifies the page, as supplied by the search provider.
	Address string

	// Headings maps heading level (1-3) to heading texts in document order.
	Headings map[int][]string

	// BodyText is all paragraph text in document order, trimmed and
	// joined with single spaces.
	BodyText string

	// InternalLinks are link targets that contain the page's own domain
	// component. The match is a plain substring check.
	InternalLinks []string
}

// SearchProvider returns competitor page addresses for a keyword.
// Implementations hide the search API protocol; the engine only needs the
// addresses in ranking order.
type SearchProvider interface {
	// TopResults returns up to limit page addresses ranked for keyword.
	TopResults(ctx context.Context, keyword string, limit int) ([]string, error)
}

// Fetcher retrieves raw page markup from URLs.
type Fetcher interface {
	// Fetch retrieves the markup at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (markup string, err error)

	// Close releases fetcher resources.
	Close() error
}

// Extractor turns one fetched page's markup into structured text.
type Extractor interface {
	// Extract parses markup fetched from address. It returns an EEXTRACT
	// error when the page cannot be parsed; callers drop the page and
	// continue with the rest of the run.
	Extract(markup, address string) (*PageContent, error)
}

// DomainLimiter rate-limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}
