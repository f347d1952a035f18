package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/contentgap/contentgap"
)

// DefaultSerpBaseURL is the serpstack search endpoint.
const DefaultSerpBaseURL = "http://api.serpstack.com/search"

// Ensure SerpClient implements contentgap.SearchProvider at compile time.
var _ contentgap.SearchProvider = (*SerpClient)(nil)

// SerpClient queries a serpstack-compatible search API for the top organic
// results of a keyword. All failures are reported as EUPSTREAM so callers
// can distinguish a provider outage from unreachable pages.
type SerpClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// SerpOption configures a SerpClient.
type SerpOption func(*SerpClient)

// WithSerpBaseURL overrides the search endpoint. Useful for testing.
func WithSerpBaseURL(u string) SerpOption {
	return func(c *SerpClient) {
		c.baseURL = u
	}
}

// WithSerpHTTPClient overrides the HTTP client used for API requests.
func WithSerpHTTPClient(client *http.Client) SerpOption {
	return func(c *SerpClient) {
		c.client = client
	}
}

// NewSerpClient creates a SerpClient authenticating with apiKey.
func NewSerpClient(apiKey string, opts ...SerpOption) *SerpClient {
	c := &SerpClient{
		client:  http.DefaultClient,
		baseURL: DefaultSerpBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// serpResponse is the subset of the serpstack response schema we consume.
type serpResponse struct {
	OrganicResults []struct {
		URL string `json:"url"`
	} `json:"organic_results"`
}

// TopResults returns up to limit organic result addresses for keyword, in
// ranking order.
func (c *SerpClient) TopResults(ctx context.Context, keyword string, limit int) ([]string, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, contentgap.Errorf(contentgap.EUPSTREAM, "search endpoint: %v", err)
	}

	query := endpoint.Query()
	query.Set("access_key", c.apiKey)
	query.Set("query", keyword)
	query.Set("num", strconv.Itoa(limit))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, contentgap.Errorf(contentgap.EUPSTREAM, "search request: %v", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, contentgap.Errorf(contentgap.EUPSTREAM, "search request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, contentgap.Errorf(contentgap.EUPSTREAM, "search provider returned HTTP %d", resp.StatusCode)
	}

	var payload serpResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, contentgap.Errorf(contentgap.EUPSTREAM, "search response: %v", err)
	}

	addresses := make([]string, 0, len(payload.OrganicResults))
	for _, result := range payload.OrganicResults {
		if result.URL == "" {
			continue
		}
		addresses = append(addresses, result.URL)
	}
	return addresses, nil
}
