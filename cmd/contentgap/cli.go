package main

import (
	"context"
	"io"

	"github.com/contentgap/contentgap"
	"github.com/contentgap/contentgap/analyze"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Score draft content against top-ranking pages for a keyword."`
}

// Dependencies holds the services and streams commands run against.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Analyzer *analyze.Analyzer

	// NewSearch builds the search provider once the API key and endpoint
	// are known from flags.
	NewSearch func(apiKey, baseURL string) contentgap.SearchProvider
}
