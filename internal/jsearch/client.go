// Package jsearch is a minimal client for the JSearch job search API.
package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL  = "https://jsearch.p.rapidapi.com"
	defaultNumPages = 10
	httpTimeout     = 15 * time.Second
)

// NewClient instantiates a JSearch API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("jsearch: api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("jsearch: parse base url: %w", err)
	}

	numPages := cfg.NumPages
	if numPages <= 0 {
		numPages = defaultNumPages
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: httpTimeout}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		host:       u.Host,
		numPages:   numPages,
		httpClient: httpClient,
	}, nil
}

// Search issues one request for the given free-text query and returns the
// raw listings. A payload without the top-level data field is an error.
func (c *Client) Search(ctx context.Context, query string) ([]Listing, error) {
	u, err := c.buildSearchURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("jsearch: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("jsearch: decode response: %w", err)
	}

	if payload.Data == nil {
		return nil, fmt.Errorf("jsearch: response missing data field")
	}

	return payload.Data, nil
}

func (c *Client) buildSearchURL(query string) (string, error) {
	if query == "" {
		return "", fmt.Errorf("jsearch: query is required")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("jsearch: parse base url: %w", err)
	}
	u.Path = path.Join(u.Path, "search")

	values := url.Values{}
	values.Set("query", query)
	values.Set("page", "1")
	values.Set("num_pages", strconv.Itoa(c.numPages))
	u.RawQuery = values.Encode()

	return u.String(), nil
}
