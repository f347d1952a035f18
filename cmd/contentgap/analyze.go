package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/contentgap/contentgap"
)

// AnalyzeCmd fetches the top-ranking pages for a keyword and reports how
// well the draft content covers the terms they share.
type AnalyzeCmd struct {
	Keyword     string `arg:"" help:"Target search keyword."`
	Draft       string `short:"d" type:"existingfile" help:"Draft content file (defaults to stdin)."`
	APIKey      string `env:"SERPSTACK_API_KEY" help:"Search API access key."`
	SerpURL     string `default:"http://api.serpstack.com/search" help:"Search API endpoint."`
	Results     int           `default:"10" help:"Results to request from the search API."`
	Competitors int           `short:"n" default:"5" help:"Competitor pages to analyze."`
	Concurrency int           `short:"c" default:"5" help:"Concurrent page fetch limit."`
	Timeout     time.Duration `default:"120s" help:"Deadline for the whole analysis."`
	Verbose     bool          `short:"v" help:"Report progress while analyzing."`
}

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	if c.APIKey == "" {
		return contentgap.Errorf(contentgap.EINVALID, "search API key required: set SERPSTACK_API_KEY or pass --api-key")
	}

	draft, err := c.readDraft(deps.Stdin)
	if err != nil {
		return err
	}

	ctx := deps.Ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	analyzer := deps.Analyzer
	analyzer.Search = deps.NewSearch(c.APIKey, c.SerpURL)
	analyzer.Results = c.Results
	analyzer.Competitors = c.Competitors
	analyzer.Concurrency = c.Concurrency

	var progress contentgap.ProgressFunc
	if c.Verbose {
		progress = func(p contentgap.Progress) {
			switch {
			case p.Err != nil:
				fmt.Fprintf(deps.Stderr, "  skipped %s: %s\n", p.Address, contentgap.ErrorMessage(p.Err))
			case p.Address != "":
				fmt.Fprintf(deps.Stderr, "  analyzed %s (%d/%d)\n", p.Address, p.Completed, p.Total)
			default:
				fmt.Fprintf(deps.Stderr, "%s\n", p.State)
			}
		}
	}

	result, err := analyzer.Analyze(ctx, &contentgap.AnalysisRequest{
		Keyword:      c.Keyword,
		DraftContent: draft,
	}, progress)
	if err != nil {
		return err
	}

	renderResult(deps.Stdout, c.Keyword, result)
	return nil
}

func (c *AnalyzeCmd) readDraft(stdin io.Reader) (string, error) {
	if c.Draft != "" {
		data, err := os.ReadFile(c.Draft)
		if err != nil {
			return "", contentgap.Errorf(contentgap.EINVALID, "cannot read draft file %q: %s", c.Draft, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", contentgap.Errorf(contentgap.EINVALID, "cannot read draft from stdin: %s", err)
	}
	return string(data), nil
}

// renderResult writes the analysis as a plain-text report.
func renderResult(w io.Writer, keyword string, result *contentgap.AnalysisResult) {
	fmt.Fprintf(w, "Content gap analysis for %q\n", keyword)
	fmt.Fprintf(w, "SEO score: %.1f/100\n", result.Score)

	fmt.Fprintf(w, "\nRecommended keywords:\n")
	writeTerms(w, result.RecommendedTerms)

	fmt.Fprintf(w, "\nMissing keywords:\n")
	if len(result.MissingTerms) == 0 {
		fmt.Fprintf(w, "  (none, the draft covers every recommended keyword)\n")
	} else {
		writeTerms(w, result.MissingTerms)
	}

	if len(result.MatchedTerms) > 0 {
		fmt.Fprintf(w, "\nMatched keywords:\n")
		writeTerms(w, result.MatchedTerms)
	}

	if len(result.CompetitorSummaries) > 0 {
		fmt.Fprintf(w, "\nCompetitor pages:\n")
		for _, cs := range result.CompetitorSummaries {
			fmt.Fprintf(w, "  %s\n", cs.Address)
			if len(cs.H1Headings) > 0 {
				fmt.Fprintf(w, "    h1: %s\n", strings.Join(cs.H1Headings, ", "))
			}
			fmt.Fprintf(w, "    content length: %d characters\n", cs.BodyLength)
		}
	}
}

func writeTerms(w io.Writer, terms []string) {
	for _, term := range terms {
		fmt.Fprintf(w, "  - %s\n", term)
	}
}
