package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/streamhub/streamhub/internal/canonical"
	"github.com/streamhub/streamhub/internal/fallback"
)

// Client wraps HTTP calls to the streamhub server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new streamhub API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// API response types (mirror server types)

type ResultsResponse struct {
	Results []canonical.Item `json:"results"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ProvidersResponse struct {
	Providers []fallback.ProbeResult `json:"providers"`
}

// API methods

func (c *Client) Health() (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.get("/health", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Providers() (*ProvidersResponse, error) {
	var resp ProvidersResponse
	if err := c.get("/health/providers", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Recent(medium string, page int) (*ResultsResponse, error) {
	var resp ResultsResponse
	path := fmt.Sprintf("/content/%s/recent?page=%d", medium, page)
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(medium, query string) (*ResultsResponse, error) {
	var resp ResultsResponse
	path := fmt.Sprintf("/content/%s/search?q=%s", medium, url.QueryEscape(query))
	if err := c.get(path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
