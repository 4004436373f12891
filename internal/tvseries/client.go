package tvseries

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nao1215/drills/internal/model"
)

// HardPageCeiling is the maximum number of pages a single FetchAll requests,
// whatever the server reports as total_pages.
const HardPageCeiling = 20

// defaultMaxBodySize limits how much of a response body is read.
const defaultMaxBodySize = 10 * 1024 * 1024 // 10MB

// Client fetches every page of the series API.
type Client struct {
	// baseURL is the endpoint; the page query parameter is added per request.
	baseURL *url.URL

	// httpClient performs the requests.
	httpClient *http.Client

	// maxPages is the page ceiling, at most HardPageCeiling.
	maxPages int

	// userAgent is set on requests when non-empty.
	userAgent string

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64

	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMaxPages lowers the page ceiling.
// Values outside 1..HardPageCeiling are clamped into that range.
func WithMaxPages(n int) ClientOption {
	return func(c *Client) {
		switch {
		case n < 1:
			c.maxPages = 1
		case n > HardPageCeiling:
			c.maxPages = HardPageCeiling
		default:
			c.maxPages = n
		}
	}
}

// WithUserAgent sets the User-Agent header of each request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets a custom logger.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &Client{
		baseURL:     u,
		httpClient:  http.DefaultClient,
		maxPages:    HardPageCeiling,
		maxBodySize: defaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c, nil
}

// MaxPages returns the effective page ceiling.
func (c *Client) MaxPages() int {
	return c.maxPages
}

// FetchResult is the outcome of a complete fetch.
type FetchResult struct {
	// Records holds every record of every fetched page, in page order.
	Records []model.Series

	// PagesFetched is the number of requests issued.
	PagesFetched int

	// TotalPages is the total_pages value of the last page.
	TotalPages int

	// StopReason tells whether the server ran out of pages or the ceiling
	// was hit first.
	StopReason model.StopReason
}

// FetchAll requests pages 1, 2, ... in order until the current page number
// reaches the server's total_pages or the page ceiling, whichever comes
// first. The context is checked before each request.
//
// Any error aborts the whole fetch; no partial result is returned.
func (c *Client) FetchAll(ctx context.Context) (*FetchResult, error) {
	result := &FetchResult{Records: make([]model.Series, 0)}

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}

		for _, raw := range p.Data {
			result.Records = append(result.Records, raw.ToSeries())
		}
		result.PagesFetched = page
		result.TotalPages = p.TotalPages

		c.logger.Debug("fetched page",
			"page", page,
			"records", len(p.Data),
			"total_pages", p.TotalPages,
		)

		if page >= p.TotalPages {
			result.StopReason = model.StopLastPage
			break
		}
		if page >= c.maxPages {
			result.StopReason = model.StopPageCeiling
			c.logger.Warn("page ceiling reached before last page",
				"ceiling", c.maxPages,
				"total_pages", p.TotalPages,
			)
			break
		}
	}

	return result, nil
}

// pageURL returns the base URL with the page query parameter set.
func (c *Client) pageURL(page int) string {
	u := *c.baseURL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}

// fetchPage requests and decodes a single page.
func (c *Client) fetchPage(ctx context.Context, page int) (*Page, error) {
	target := c.pageURL(page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: page %d: %v", ErrTransport, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: page %d: unexpected status %s", ErrTransport, page, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: failed to read body: %v", ErrTransport, page, err)
	}

	p, err := DecodePage(body)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", page, err)
	}
	return p, nil
}
