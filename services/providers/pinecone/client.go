// Package pinecone is a minimal data-plane client for a single Pinecone
// index, implementing the providers.VectorIndex contract.
package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oceanus-labs/argo-backend/config"
	"github.com/oceanus-labs/argo-backend/services/providers"
	"go.uber.org/zap"
)

// Client queries one Pinecone index over its data-plane host.
type Client struct {
	apiKey     string
	indexHost  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Pinecone client from configuration.
func NewClient(cfg config.PineconeConfig, logger *zap.Logger) *Client {
	host := strings.TrimSuffix(cfg.IndexHost, "/")
	if host != "" && !strings.HasPrefix(host, "http") {
		host = "https://" + host
	}

	return &Client{
		apiKey:    cfg.APIKey,
		indexHost: host,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Query returns the topK nearest neighbors for the vector, including
// the stored text from each match's metadata.
func (c *Client) Query(ctx context.Context, vector []float32, topK int) ([]providers.Match, error) {
	if c.indexHost == "" {
		return nil, fmt.Errorf("pinecone index host not configured")
	}

	reqBody, err := json.Marshal(&queryRequest{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.indexHost+"/query", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create query request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Api-Key", c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("pinecone query failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read query response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pinecone query returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var queryResp queryResponse
	if err := json.Unmarshal(respBody, &queryResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal query response: %w", err)
	}

	matches := make([]providers.Match, 0, len(queryResp.Matches))
	for _, m := range queryResp.Matches {
		matches = append(matches, providers.Match{
			ID:    m.ID,
			Score: m.Score,
			Text:  m.Metadata.Text,
		})
	}

	c.logger.Debug("pinecone query completed", zap.Int("matches", len(matches)))
	return matches, nil
}

// Pinecone data-plane request/response types

type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type queryResponse struct {
	Matches []queryMatch `json:"matches"`
}

type queryMatch struct {
	ID       string        `json:"id"`
	Score    float32       `json:"score"`
	Metadata matchMetadata `json:"metadata"`
}

type matchMetadata struct {
	Text string `json:"text"`
}
