package main_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contentgap/contentgap"
	"github.com/contentgap/contentgap/analyze"
	main "github.com/contentgap/contentgap/cmd/contentgap"
	"github.com/contentgap/contentgap/gonum"
	"github.com/contentgap/contentgap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catTagger tags a small fixed lexicon so analysis results are predictable.
func catTagger() *mock.Tagger {
	lexicon := map[string]contentgap.Tag{
		"cats":  contentgap.TagNoun,
		"mice":  contentgap.TagNoun,
		"chase": contentgap.TagVerb,
	}
	return &mock.Tagger{
		TagFn: func(text string) ([]contentgap.TaggedToken, error) {
			var tokens []contentgap.TaggedToken
			for _, word := range strings.Fields(text) {
				word = strings.TrimRight(word, ".,!?")
				tag, ok := lexicon[strings.ToLower(word)]
				if !ok {
					tag = contentgap.TagOther
				}
				tokens = append(tokens, contentgap.TaggedToken{Text: word, Tag: tag})
			}
			return tokens, nil
		},
	}
}

// testDeps wires an analyzer around mocks serving a single competitor page.
func testDeps(stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	tagger := catTagger()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
		Analyzer: &analyze.Analyzer{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "<html>" + url + "</html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_, address string) (*contentgap.PageContent, error) {
					return &contentgap.PageContent{
						Address:  address,
						Headings: map[int][]string{1: {"All About Cats"}},
						BodyText: "Cats love mice. Cats love mice.",
					}, nil
				},
			},
			Tagger:   tagger,
			Profiles: analyze.NewProfileBuilder(tagger, gonum.NewTopicModel()),
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		NewSearch: func(apiKey, baseURL string) contentgap.SearchProvider {
			return &mock.SearchProvider{
				TopResultsFn: func(_ context.Context, _ string, _ int) ([]string, error) {
					return []string{"https://cats.example.com/guide"}, nil
				},
			}
		},
	}
	return deps, stdout, stderr
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders a report for draft read from stdin", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps("I like mice a lot.")

		cmd := &main.AnalyzeCmd{
			Keyword:     "cat care",
			APIKey:      "test-key",
			Results:     10,
			Competitors: 5,
			Concurrency: 2,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, `Content gap analysis for "cat care"`)
		assert.Contains(t, output, "SEO score:")
		assert.Contains(t, output, "Recommended keywords:")
		assert.Contains(t, output, "- cats")
		assert.Contains(t, output, "Missing keywords:")
		assert.Contains(t, output, "Matched keywords:")
		assert.Contains(t, output, "- mice")
		assert.Contains(t, output, "https://cats.example.com/guide")
		assert.Contains(t, output, "h1: All About Cats")
		assert.Empty(t, stderr.String())
	})

	t.Run("reads draft from file when flag is set", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "draft.txt")
		require.NoError(t, os.WriteFile(path, []byte("Cats chase mice everywhere."), 0o600))

		deps, stdout, _ := testDeps("stdin content is ignored")

		cmd := &main.AnalyzeCmd{
			Keyword:     "cat care",
			Draft:       path,
			APIKey:      "test-key",
			Results:     10,
			Competitors: 5,
			Concurrency: 2,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		// Both nouns appear in the file so nothing is missing.
		assert.Contains(t, stdout.String(), "the draft covers every recommended keyword")
	})

	t.Run("requires an API key", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps("some draft")

		cmd := &main.AnalyzeCmd{Keyword: "cat care"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, contentgap.EINVALID, contentgap.ErrorCode(err))
		assert.Contains(t, contentgap.ErrorMessage(err), "SERPSTACK_API_KEY")
	})

	t.Run("verbose mode reports progress on stderr", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps("I like mice.")

		cmd := &main.AnalyzeCmd{
			Keyword:     "cat care",
			APIKey:      "test-key",
			Results:     10,
			Competitors: 5,
			Concurrency: 2,
			Verbose:     true,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		progress := stderr.String()
		assert.Contains(t, progress, string(contentgap.StateFetchingCompetitors))
		assert.Contains(t, progress, string(contentgap.StateDone))
		assert.Contains(t, progress, "analyzed https://cats.example.com/guide")
	})

	t.Run("propagates analysis failures", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps("some draft")
		deps.NewSearch = func(apiKey, baseURL string) contentgap.SearchProvider {
			return &mock.SearchProvider{
				TopResultsFn: func(_ context.Context, _ string, _ int) ([]string, error) {
					return nil, contentgap.Errorf(contentgap.EUPSTREAM, "quota exceeded")
				},
			}
		}

		cmd := &main.AnalyzeCmd{
			Keyword:     "cat care",
			APIKey:      "test-key",
			Results:     10,
			Competitors: 5,
			Concurrency: 2,
		}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, contentgap.EUPSTREAM, contentgap.ErrorCode(err))
	})

	t.Run("passes key and endpoint through to the provider factory", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps("I like mice.")

		var gotKey, gotURL string
		inner := deps.NewSearch
		deps.NewSearch = func(apiKey, baseURL string) contentgap.SearchProvider {
			gotKey, gotURL = apiKey, baseURL
			return inner(apiKey, baseURL)
		}

		cmd := &main.AnalyzeCmd{
			Keyword:     "cat care",
			APIKey:      "secret-key",
			SerpURL:     "https://serp.example.com/search",
			Results:     10,
			Competitors: 5,
			Concurrency: 2,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Equal(t, "secret-key", gotKey)
		assert.Equal(t, "https://serp.example.com/search", gotURL)
	})
}

func TestAnalyzeCmd_ScoreFormatting(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := testDeps("Nothing relevant here at all.")

	cmd := &main.AnalyzeCmd{
		Keyword:     "cat care",
		APIKey:      "test-key",
		Results:     10,
		Competitors: 5,
		Concurrency: 2,
	}

	err := cmd.Run(deps)
	require.NoError(t, err)

	// A draft with no recommended terms scores zero.
	assert.Contains(t, stdout.String(), fmt.Sprintf("SEO score: %.1f/100", 0.0))
}
