package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"park-sync/core/config"
	"park-sync/feature/park/models"
)

// HTTPClient reads all three kinds of park data from the upstream API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewHTTPClient creates a client for the configured upstream.
func NewHTTPClient(cfg config.UpstreamConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.ApiKey,
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

func (c *HTTPClient) get(ctx context.Context, parkID, resource string) ([]byte, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("upstream base url: %w", ErrNotConfigured)
	}

	path := fmt.Sprintf("%s/parks/%s/%s", c.baseURL, url.PathEscape(parkID), resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// FetchBasic implements BasicDataSource.
func (c *HTTPClient) FetchBasic(ctx context.Context, parkID string) (models.BasicData, error) {
	body, err := c.get(ctx, parkID, "basic")
	if err != nil {
		return models.BasicData{}, err
	}
	return decodeBasic(body)
}

// FetchWaitTimes implements WaitTimeSource.
func (c *HTTPClient) FetchWaitTimes(ctx context.Context, parkID string) ([]models.WaitTimeRecord, error) {
	body, err := c.get(ctx, parkID, "wait-times")
	if err != nil {
		return nil, err
	}
	records, err := decodeList[models.WaitTimeRecord](body)
	if err != nil {
		return nil, fmt.Errorf("decoding wait times: %w", err)
	}
	return records, nil
}

// FetchSchedules implements ScheduleSource.
func (c *HTTPClient) FetchSchedules(ctx context.Context, parkID string) ([]models.ScheduleRecord, error) {
	body, err := c.get(ctx, parkID, "schedules")
	if err != nil {
		return nil, err
	}
	records, err := decodeList[models.ScheduleRecord](body)
	if err != nil {
		return nil, fmt.Errorf("decoding schedules: %w", err)
	}
	return records, nil
}
