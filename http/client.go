// Package http provides the signed HTTP client for the crawl service.
// Requests are authenticated by SigningTransport and responses are decoded
// into the wxtouch domain types.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	wxtouch "github.com/HeteroCat/wx-touch"
	"github.com/HeteroCat/wx-touch/runes"
)

// DefaultOrigin is the production host of the crawl service. Endpoint paths
// are resolved against it when no base URL is configured.
const DefaultOrigin = "https://wxcrawl.touchturing.com"

// Endpoint paths.
const (
	PathSearch         = "/api/search"
	PathLatestArticles = "/api/latest_articles"
	PathExtract        = "/api/extract"
	PathKeywordSearch  = "/api/keyword_search"
)

// Ensure Client implements wxtouch.Service at compile time.
var _ wxtouch.Service = (*Client)(nil)

// Config holds the connection settings of a Client.
type Config struct {
	// BaseURL is prepended to every endpoint path. When empty, paths are
	// resolved against the client's origin instead, which supports a
	// same-origin proxy in development.
	BaseURL string

	APIKey    string
	APISecret string
}

// Credentials returns the key pair from the config.
func (c Config) Credentials() Credentials {
	return Credentials{APIKey: c.APIKey, APISecret: c.APISecret}
}

// Client calls the crawl service. It holds only configuration and is safe for
// concurrent use; create one at startup and share it.
type Client struct {
	baseURL string
	origin  string
	client  *http.Client
	logger  *slog.Logger

	// Set by options; consumed when building client.
	transport http.RoundTripper
	clock     Clock
	timeout   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the transport beneath the signing layer.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithTimeout sets an overall timeout for each request.
// By default no timeout is enforced.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithClock sets the clock used for request timestamps.
func WithClock(clock Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

// WithLogger sets the logger for construction warnings and request failures.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithOrigin sets the origin used when Config.BaseURL is empty.
// Defaults to DefaultOrigin.
func WithOrigin(origin string) Option {
	return func(c *Client) {
		c.origin = origin
	}
}

// NewClient creates a Client for cfg. Missing credentials are logged as a
// warning; the service is left to reject unsigned requests.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		origin:    DefaultOrigin,
		logger:    slog.Default(),
		transport: http.DefaultTransport,
		clock:     SystemClock{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
		Transport: &SigningTransport{
			Transport:   c.transport,
			Credentials: cfg.Credentials(),
			Clock:       c.clock,
		},
	}

	if !cfg.Credentials().Valid() {
		c.logger.Warn("API credentials not configured; requests will be rejected",
			"api_key_set", cfg.APIKey != "",
			"api_secret_set", cfg.APISecret != "",
		)
	}

	return c
}

// SearchAccounts returns accounts matching search.
func (c *Client) SearchAccounts(ctx context.Context, search string) (*wxtouch.Page[wxtouch.Account], error) {
	if err := wxtouch.ValidateSearch(search); err != nil {
		return nil, err
	}

	var page wxtouch.Page[wxtouch.Account]
	if err := c.get(ctx, PathSearch, params{
		"search": strings.TrimSpace(search),
	}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// LatestArticles returns up to count of the account's most recent articles.
func (c *Client) LatestArticles(ctx context.Context, nickname string, count int) (*wxtouch.Page[wxtouch.Article], error) {
	if err := wxtouch.ValidateNickname(nickname); err != nil {
		return nil, err
	}
	if err := wxtouch.ValidateCount(count); err != nil {
		return nil, err
	}

	var page wxtouch.Page[wxtouch.Article]
	if err := c.get(ctx, PathLatestArticles, params{
		"nickname": strings.TrimSpace(nickname),
		"count":    strconv.Itoa(wxtouch.ClampCount(count)),
	}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ExtractMarkdown converts the article at articleURL into Markdown.
//
// The service answers with a JSON string, which is cleaned with
// runes.FixEncoding. Any other JSON value is returned verbatim.
func (c *Client) ExtractMarkdown(ctx context.Context, articleURL string) (string, error) {
	if err := wxtouch.ValidateArticleURL(articleURL); err != nil {
		return "", err
	}

	var raw json.RawMessage
	if err := c.get(ctx, PathExtract, params{
		"url": strings.TrimSpace(articleURL),
	}, &raw); err != nil {
		return "", err
	}

	var markdown string
	if err := json.Unmarshal(raw, &markdown); err != nil {
		return string(raw), nil
	}
	return runes.FixEncoding(markdown), nil
}

// SearchArticles searches an account's articles by keyword.
func (c *Client) SearchArticles(ctx context.Context, search wxtouch.KeywordSearch) (*wxtouch.Page[wxtouch.Article], error) {
	if err := search.Validate(); err != nil {
		return nil, err
	}

	searchType := search.SearchType
	if searchType == "" {
		searchType = wxtouch.SearchTitle
	}

	var page wxtouch.Page[wxtouch.Article]
	if err := c.get(ctx, PathKeywordSearch, params{
		"keyword":     strings.TrimSpace(search.Keyword),
		"nickname":    strings.TrimSpace(search.Nickname),
		"search_type": string(searchType),
		"count":       strconv.Itoa(wxtouch.ClampCount(search.Count)),
		"offset":      strconv.Itoa(search.Offset),
	}, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// params holds the query parameters of one request.
type params map[string]string

func (p params) encode() string {
	q := make(url.Values, len(p))
	for key, value := range p {
		q.Set(key, value)
	}
	return q.Encode()
}

// resolve builds the absolute URL for an endpoint path.
func (c *Client) resolve(path string) (*url.URL, error) {
	if c.baseURL != "" {
		return url.Parse(c.baseURL + path)
	}
	origin, err := url.Parse(c.origin)
	if err != nil {
		return nil, err
	}
	return origin.ResolveReference(&url.URL{Path: path}), nil
}

// get sends a signed GET request for path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query params, out any) error {
	u, err := c.resolve(path)
	if err != nil {
		return fmt.Errorf("invalid service URL: %w", err)
	}
	u.RawQuery = query.encode()

	req, err := http.NewRequestWithContext(WithEndpoint(ctx, path), http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fail(path, &wxtouch.RequestError{Message: err.Error(), Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(path, wxtouch.NewRequestError(resp.StatusCode, decodeDetail(resp)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(path, &wxtouch.RequestError{
			Message: fmt.Sprintf("malformed response: %v", err),
			Err:     err,
		})
	}
	return nil
}

// decodeDetail returns the "detail" message of an error body, or "" when the
// body is not JSON or carries no string detail.
func decodeDetail(resp *http.Response) string {
	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ""
	}
	detail, _ := body.Detail.(string)
	return detail
}

func (c *Client) fail(path string, err error) error {
	c.logger.Error("API request failed", "endpoint", path, "err", err)
	return err
}
