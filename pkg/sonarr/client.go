package sonarr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	apiPrefix      = "/api/v3"
	apiKeyHeader   = "X-Api-Key"
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4096
)

// APIError is returned for non-2xx Sonarr responses
type APIError struct {
	StatusCode int
	Message    string // server supplied, may be empty
	Body       string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sonarr: API error (%d): %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("sonarr: API error (%d): %s", e.StatusCode, e.Message)
}

// UpstreamMessage exposes the message Sonarr put in the response body.
func (e *APIError) UpstreamMessage() string {
	return e.Message
}

// NewClient instantiates a Sonarr API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("sonarr: base url and api key are required")
	}

	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("sonarr: parse base url: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// ListSeries returns every series in the library, in Sonarr's order.
func (c *Client) ListSeries(ctx context.Context) ([]Series, error) {
	var out []Series
	if err := c.do(ctx, http.MethodGet, "/series", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Calendar returns episodes airing within the given range
func (c *Client) Calendar(ctx context.Context, params CalendarParams) ([]Episode, error) {
	query := url.Values{}
	query.Set("start", params.Start)
	query.Set("end", params.End)
	query.Set("unmonitored", strconv.FormatBool(params.Unmonitored))

	var out []Episode
	if err := c.do(ctx, http.MethodGet, "/calendar", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LookupSeries searches for series by term. A term of the form
// "tvdb:<id>" resolves one specific series.
func (c *Client) LookupSeries(ctx context.Context, term string) ([]LookupSeries, error) {
	query := url.Values{}
	query.Set("term", term)

	var out []LookupSeries
	if err := c.do(ctx, http.MethodGet, "/series/lookup", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddSeries creates a series from a full series payload
func (c *Client) AddSeries(ctx context.Context, payload map[string]any) (Series, error) {
	var out Series
	if err := c.do(ctx, http.MethodPost, "/series", nil, payload, &out); err != nil {
		return Series{}, err
	}
	return out, nil
}

// Episodes lists all episodes of one series
func (c *Client) Episodes(ctx context.Context, seriesID int) ([]Episode, error) {
	query := url.Values{}
	query.Set("seriesId", strconv.Itoa(seriesID))

	var out []Episode
	if err := c.do(ctx, http.MethodGet, "/episode", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitCommand queues a command such as SeriesSearch
func (c *Client) SubmitCommand(ctx context.Context, cmd CommandRequest) (Command, error) {
	var out Command
	if err := c.do(ctx, http.MethodPost, "/command", nil, cmd, &out); err != nil {
		return Command{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c == nil {
		return fmt.Errorf("sonarr: client is nil")
	}

	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("sonarr: encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("sonarr: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sonarr: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("sonarr: decode response: %w", err)
	}

	return nil
}

// errorMessage pulls the human readable message out of a Sonarr error
// body: either {"message": ...} or a validation failure array.
func errorMessage(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '{':
		var body errorBody
		if err := json.Unmarshal(raw, &body); err == nil {
			return body.Message
		}
	case '[':
		var failures []validationFailure
		if err := json.Unmarshal(raw, &failures); err == nil && len(failures) > 0 {
			return failures[0].ErrorMessage
		}
	}

	return ""
}
