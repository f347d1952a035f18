package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/contentgap/contentgap"
	"github.com/contentgap/contentgap/analyze"
	gapgonum "github.com/contentgap/contentgap/gonum"
	gapquery "github.com/contentgap/contentgap/goquery"
	gaphttp "github.com/contentgap/contentgap/http"
	gapprose "github.com/contentgap/contentgap/prose"
	gapslog "github.com/contentgap/contentgap/slog"
	"github.com/joho/godotenv"
)

// defaultFetchRPS limits page fetches per domain.
const defaultFetchRPS = 2

func main() {
	// Optional .env with the search API key.
	_ = godotenv.Load()

	m := NewMain()
	defer m.Close()

	if err := m.Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	fetcher contentgap.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// The language model is constructed once here and shared, read-only,
	// by every component that tags text.
	tagger := gapprose.NewTagger()

	fetcher := gapslog.NewLoggingFetcher(gaphttp.NewFetcher(), logger)
	m.fetcher = fetcher

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Analyzer: &analyze.Analyzer{
			Fetcher:   fetcher,
			Extractor: gapquery.NewExtractor(),
			Tagger:    tagger,
			Profiles:  analyze.NewProfileBuilder(tagger, gapgonum.NewTopicModel()),
			Limiter:   analyze.NewDomainLimiter(defaultFetchRPS),
			Logger:    logger,
		},
		NewSearch: func(apiKey, baseURL string) contentgap.SearchProvider {
			return gapslog.NewLoggingSearchProvider(
				gaphttp.NewSerpClient(apiKey, gaphttp.WithSerpBaseURL(baseURL)),
				logger,
			)
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("contentgap"),
		kong.Description("Content-gap analysis for SEO research."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kctx.Run()
}
