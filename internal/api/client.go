package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DiaryAPI defines the calls pacer makes against the diary service.
// This interface is implemented by *Client and can be used for testing.
type DiaryAPI interface {
	Diary(ctx context.Context, date string) Response
	Statistics(ctx context.Context) Response
	WriteDiaryField(ctx context.Context, date, key, value string) (string, error)
}

// Ensure Client implements DiaryAPI at compile time.
var _ DiaryAPI = (*Client)(nil)

// Client talks to the diary HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string

	mu    sync.RWMutex
	token string
}

const (
	defaultAPIURL    = "127.0.0.1:8000"
	defaultUserAgent = "pacer/0.1"
	requestTimeout   = 5 * time.Second
	maxBodyBytes     = 8 << 20
)

// NewClient builds a Client using the provided host:port or URL value.
func NewClient(apiURL string) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// SetToken replaces the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Diary retrieves the diary records for a day, month or year.
func (c *Client) Diary(ctx context.Context, date string) Response {
	if c == nil {
		return Response{Err: fmt.Errorf("client is nil")}
	}
	return c.do(ctx, http.MethodGet, diaryPath(date), nil)
}

// Statistics retrieves the component/model/statistic summary.
func (c *Client) Statistics(ctx context.Context) Response {
	if c == nil {
		return Response{Err: fmt.Errorf("client is nil")}
	}
	return c.do(ctx, http.MethodGet, "/api/statistics", nil)
}

// FetchDiary retrieves and decodes the diary records for date.
func (c *Client) FetchDiary(ctx context.Context, date string) ([]Record, error) {
	return Decode[[]Record](c.Diary(ctx, date))
}

// FetchStatistics retrieves and decodes the statistics summary.
func (c *Client) FetchStatistics(ctx context.Context) ([]Component, error) {
	return Decode[[]Component](c.Statistics(ctx))
}

// WriteDiaryField persists a single diary field with a partial PATCH and
// returns the value the server stored, which may be normalized.
func (c *Client) WriteDiaryField(ctx context.Context, date, key, value string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("field key required")
	}
	resp := c.do(ctx, http.MethodPatch, diaryPath(date), map[string]string{key: value})
	record, err := Decode[Record](resp)
	if err != nil {
		return "", err
	}
	stored, ok := record[key]
	if !ok || stored == nil {
		return value, nil
	}
	return FormatValue(stored), nil
}

func diaryPath(date string) string {
	return "/api/diary/" + strings.TrimSpace(date)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) Response {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, payload)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, payload any) Response {
	reqURL := c.baseURL.ResolveReference(rel)

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return Response{Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return Response{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Response{Err: fmt.Errorf("read response: %w", err)}
	}
	return Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Path:       rel.String(),
		Body:       data,
	}
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
