// Package analyze implements the content-gap analysis engine: keyword
// profiling of competitor pages and overlap scoring against draft content.
package analyze

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/contentgap/contentgap"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Analyzer defaults.
const (
	// DefaultResults is how many addresses to request from the search
	// provider.
	DefaultResults = 10
	// DefaultCompetitors caps how many of those addresses are analyzed.
	DefaultCompetitors = 5
	// DefaultConcurrency bounds parallel page fetches.
	DefaultConcurrency = 5

	maxSummaries = 3
)

// Analyzer runs one-shot content-gap analyses. Each call to Analyze moves
// through the run states in order and ends in done or failed. Per-page
// extraction failures are logged and the page dropped; only input errors,
// provider errors, and an empty corpus terminate a run.
type Analyzer struct {
	Search    contentgap.SearchProvider
	Fetcher   contentgap.Fetcher
	Extractor contentgap.Extractor
	Tagger    contentgap.Tagger
	Profiles  *ProfileBuilder
	Limiter   contentgap.DomainLimiter
	Logger    *slog.Logger

	Results     int
	Competitors int
	Concurrency int
	RetryDelays []time.Duration
}

// pageResult holds the outcome of fetching and extracting a single
// competitor address.
type pageResult struct {
	position int
	address  string
	page     *contentgap.PageContent
	err      error
}

// Analyze runs one full analysis for the request. The progress callback,
// if provided, receives an event on every state transition and for every
// page that completes or fails extraction.
func (a *Analyzer) Analyze(ctx context.Context, req *contentgap.AnalysisRequest, progress contentgap.ProgressFunc) (*contentgap.AnalysisResult, error) {
	logger := a.logger().With("run", uuid.NewString(), "keyword", req.Keyword)

	notify(progress, contentgap.Progress{State: contentgap.StateAwaitingInput})
	if err := req.Validate(); err != nil {
		return a.fail(logger, progress, err)
	}

	notify(progress, contentgap.Progress{State: contentgap.StateFetchingCompetitors})
	addresses, err := a.Search.TopResults(ctx, req.Keyword, a.results())
	if err != nil {
		if contentgap.ErrorCode(err) != contentgap.EUPSTREAM {
			err = contentgap.Errorf(contentgap.EUPSTREAM, "search provider: %v", err)
		}
		return a.fail(logger, progress, err)
	}
	if limit := a.competitors(); len(addresses) > limit {
		addresses = addresses[:limit]
	}
	logger.Info("competitors selected", "count", len(addresses))

	notify(progress, contentgap.Progress{State: contentgap.StateExtractingPages, Total: len(addresses)})
	pages := a.extractPages(ctx, logger, progress, addresses)
	if len(pages) == 0 {
		return a.fail(logger, progress,
			contentgap.Errorf(contentgap.EEMPTYCORPUS, "no competitor pages could be analyzed"))
	}

	notify(progress, contentgap.Progress{State: contentgap.StateBuildingProfile})
	profile, err := a.Profiles.Build(pages)
	if err != nil {
		return a.fail(logger, progress, err)
	}

	notify(progress, contentgap.Progress{State: contentgap.StateScoring})
	userTerms, err := KeywordSet(a.Tagger, req.DraftContent)
	if err != nil {
		return a.fail(logger, progress, err)
	}

	result := Score(userTerms, profile)
	result.CompetitorSummaries = summarize(pages)

	logger.Info("analysis complete",
		"score", result.Score,
		"pages", len(pages),
		"matched", len(result.MatchedTerms),
		"missing", len(result.MissingTerms),
	)
	notify(progress, contentgap.Progress{State: contentgap.StateDone})
	return result, nil
}

// extractPages fetches and extracts the competitor addresses concurrently.
// Completion order is unconstrained, but the returned pages are restored
// to the original ranking order: ranking position affects tie-breaking
// downstream, so it must survive the concurrency.
func (a *Analyzer) extractPages(ctx context.Context, logger *slog.Logger, progress contentgap.ProgressFunc, addresses []string) []*contentgap.PageContent {
	results := make([]pageResult, len(addresses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency())
	for i, address := range addresses {
		i, address := i, address
		g.Go(func() error {
			results[i] = a.processAddress(gctx, i, address)
			return nil
		})
	}
	_ = g.Wait()

	var pages []*contentgap.PageContent
	completed := 0
	for _, res := range results {
		completed++
		event := contentgap.Progress{
			State:     contentgap.StateExtractingPages,
			Completed: completed,
			Total:     len(results),
			Address:   res.address,
		}
		if res.err != nil {
			logger.Warn("page dropped", "address", res.address, "err", res.err)
			event.Err = res.err
			notify(progress, event)
			continue
		}
		notify(progress, event)
		pages = append(pages, res.page)
	}
	return pages
}

// processAddress fetches and extracts a single competitor page.
func (a *Analyzer) processAddress(ctx context.Context, position int, address string) pageResult {
	res := pageResult{position: position, address: address}

	if a.Limiter != nil {
		parsed, err := url.Parse(address)
		if err == nil {
			if err := a.Limiter.Wait(ctx, parsed.Host); err != nil {
				res.err = err
				return res
			}
		}
	}

	delays := a.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	markup, err := FetchWithRetryDelays(ctx, address, a.Fetcher.Fetch, nil, delays)
	if err != nil {
		res.err = contentgap.Errorf(contentgap.EEXTRACT, "fetch %s: %v", address, err)
		return res
	}

	page, err := a.Extractor.Extract(markup, address)
	if err != nil {
		res.err = err
		return res
	}

	res.page = page
	return res
}

// summarize condenses the leading pages for the result's competitor view.
func summarize(pages []*contentgap.PageContent) []contentgap.CompetitorSummary {
	n := len(pages)
	if n > maxSummaries {
		n = maxSummaries
	}
	summaries := make([]contentgap.CompetitorSummary, 0, n)
	for _, page := range pages[:n] {
		summaries = append(summaries, contentgap.CompetitorSummary{
			Address:    page.Address,
			H1Headings: page.Headings[1],
			BodyLength: len(page.BodyText),
		})
	}
	return summaries
}

func (a *Analyzer) fail(logger *slog.Logger, progress contentgap.ProgressFunc, err error) (*contentgap.AnalysisResult, error) {
	logger.Error("analysis failed",
		"code", contentgap.ErrorCode(err),
		"reason", contentgap.ErrorMessage(err),
	)
	notify(progress, contentgap.Progress{State: contentgap.StateFailed, Err: err})
	return nil, err
}

func (a *Analyzer) results() int {
	if a.Results > 0 {
		return a.Results
	}
	return DefaultResults
}

func (a *Analyzer) competitors() int {
	if a.Competitors > 0 {
		return a.Competitors
	}
	return DefaultCompetitors
}

func (a *Analyzer) concurrency() int {
	if a.Concurrency > 0 {
		return a.Concurrency
	}
	return DefaultConcurrency
}

func (a *Analyzer) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

func notify(progress contentgap.ProgressFunc, event contentgap.Progress) {
	if progress != nil {
		progress(event)
	}
}
