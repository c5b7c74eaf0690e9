// Package websearch is a Google Custom Search JSON API client used as
// the retrieval fallback, implementing providers.SearchClient.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/oceanus-labs/argo-backend/config"
	"github.com/oceanus-labs/argo-backend/services/providers"
	"go.uber.org/zap"
)

const defaultEndpoint = "https://www.googleapis.com/customsearch/v1"

// Client queries the Google Custom Search JSON API with safe search
// enabled and the configured request timeout (15s by default).
type Client struct {
	apiKey     string
	engineID   string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a search client from configuration.
func NewClient(cfg config.SearchConfig, logger *zap.Logger) *Client {
	return &Client{
		apiKey:   cfg.APIKey,
		engineID: cfg.EngineID,
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Search returns up to limit results for the query. A missing API key
// or engine id yields an empty result set, not an error; the fallback
// is simply unavailable.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]providers.SearchResult, error) {
	if c.apiKey == "" || c.engineID == "" {
		c.logger.Debug("web search not configured, returning no results")
		return nil, nil
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(limit))
	params.Set("safe", "active")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(respBody, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search response: %w", err)
	}

	results := make([]providers.SearchResult, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		results = append(results, providers.SearchResult{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}

	c.logger.Debug("web search completed",
		zap.String("query", query),
		zap.Int("results", len(results)))
	return results, nil
}

// Custom Search JSON API response types

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}
