package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contentgap/contentgap"
	gaphttp "github.com/contentgap/contentgap/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerpClient_TopResults(t *testing.T) {
	t.Parallel()

	t.Run("implements contentgap.SearchProvider interface", func(t *testing.T) {
		t.Parallel()
		var _ contentgap.SearchProvider = gaphttp.NewSerpClient("key")
	})

	t.Run("returns organic result addresses in order", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret", r.URL.Query().Get("access_key"))
			assert.Equal(t, "go testing", r.URL.Query().Get("query"))
			assert.Equal(t, "10", r.URL.Query().Get("num"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"organic_results":[
				{"url":"https://a.example/one"},
				{"url":"https://b.example/two"},
				{"url":""},
				{"url":"https://c.example/three"}
			]}`))
		}))
		defer server.Close()

		client := gaphttp.NewSerpClient("secret", gaphttp.WithSerpBaseURL(server.URL))

		addresses, err := client.TopResults(context.Background(), "go testing", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://a.example/one",
			"https://b.example/two",
			"https://c.example/three",
		}, addresses)
	})

	t.Run("returns empty slice when provider has no results", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"organic_results":[]}`))
		}))
		defer server.Close()

		client := gaphttp.NewSerpClient("secret", gaphttp.WithSerpBaseURL(server.URL))

		addresses, err := client.TopResults(context.Background(), "obscure", 10)
		require.NoError(t, err)
		assert.Empty(t, addresses)
	})

	t.Run("maps non-200 responses to EUPSTREAM", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := gaphttp.NewSerpClient("secret", gaphttp.WithSerpBaseURL(server.URL))

		_, err := client.TopResults(context.Background(), "go testing", 10)
		require.Error(t, err)
		assert.Equal(t, contentgap.EUPSTREAM, contentgap.ErrorCode(err))
	})

	t.Run("maps malformed payloads to EUPSTREAM", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := gaphttp.NewSerpClient("secret", gaphttp.WithSerpBaseURL(server.URL))

		_, err := client.TopResults(context.Background(), "go testing", 10)
		require.Error(t, err)
		assert.Equal(t, contentgap.EUPSTREAM, contentgap.ErrorCode(err))
	})

	t.Run("maps connection failures to EUPSTREAM", func(t *testing.T) {
		t.Parallel()

		client := gaphttp.NewSerpClient("secret",
			gaphttp.WithSerpBaseURL("http://non-existent-host.invalid/search"))

		_, err := client.TopResults(context.Background(), "go testing", 10)
		require.Error(t, err)
		assert.Equal(t, contentgap.EUPSTREAM, contentgap.ErrorCode(err))
	})
}
