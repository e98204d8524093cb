package scraperapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/shopsearch/backend/internal/domain"
	"golang.org/x/time/rate"
)

// maxResponseBytes caps how much of a provider response body is read.
// Structured search payloads are well under this.
const maxResponseBytes = 10 << 20

// ClientConfig holds construction parameters for the provider client.
// Zero values fall back to sensible defaults.
type ClientConfig struct {
	APIKey              string
	BaseURL             string
	CountryCode         string
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	RequestsPerSecond   float64
	Burst               int
	Retry               RetryPolicy
}

// Client handles communication with the structured product-data provider.
// The underlying HTTP connection pool is process-wide and reused across
// calls.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	countryCode string
	rateLimiter *rate.Limiter
	retry       RetryPolicy
	debug       bool
}

// NewClient creates a new provider API client
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 50
	}
	if cfg.MaxIdleConnsPerHost == 0 {
		cfg.MaxIdleConnsPerHost = 10
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 5
	}
	if cfg.Burst == 0 {
		cfg.Burst = 10
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = DefaultRetryPolicy()
	}

	transport := &http.Transport{
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		countryCode: cfg.CountryCode,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		retry:       cfg.Retry,
	}
}

// SetDebug enables or disables verbose request logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[SCRAPER] "+format, args...)
	}
}

// SearchProducts searches the provider's product catalog. Rate-limit
// responses are retried with exponential backoff; any other HTTP failure
// fails immediately. Malformed result entries are dropped, not surfaced.
func (c *Client) SearchProducts(ctx context.Context, query, region string) (*domain.SearchResultSet, error) {
	if region == "" {
		region = c.countryCode
	}

	params := url.Values{}
	params.Add("api_key", c.apiKey)
	params.Add("query", query)
	params.Add("country", region)
	reqURL := fmt.Sprintf("%s/search/v1?%s", c.baseURL, params.Encode())

	c.debugLog("search query=%q country=%s", query, region)

	var resultSet *domain.SearchResultSet
	err := c.retry.Do(ctx, "search", isRateLimited, func() error {
		body, err := c.get(ctx, reqURL)
		if err != nil {
			return err
		}
		parsed, err := mapSearchResponse(body)
		if err != nil {
			return err
		}
		resultSet = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SCRAPER] search %q returned %d results", query, resultSet.TotalResults())
	return resultSet, nil
}

// GetProductDetails retrieves the detail record for one catalog item.
// Rate-limit and transport failures are both retried; the caller treats an
// exhausted budget as a per-item failure, never a batch failure.
func (c *Client) GetProductDetails(ctx context.Context, asin, region string) (*domain.ItemDetail, error) {
	if region == "" {
		region = c.countryCode
	}

	params := url.Values{}
	params.Add("api_key", c.apiKey)
	params.Add("asin", asin)
	params.Add("country", region)
	reqURL := fmt.Sprintf("%s/product/v1?%s", c.baseURL, params.Encode())

	c.debugLog("details asin=%s country=%s", asin, region)

	var detail *domain.ItemDetail
	err := c.retry.Do(ctx, "details "+asin, isTransient, func() error {
		body, err := c.get(ctx, reqURL)
		if err != nil {
			return err
		}
		parsed, err := mapProductResponse(body)
		if err != nil {
			return err
		}
		detail = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// get executes a single GET request and classifies the outcome
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "ShopSearch/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := readLimitedBody(resp.Body, maxResponseBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnreachable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status 429", domain.ErrRateLimited)
	default:
		return nil, fmt.Errorf("%w: status %d", domain.ErrProviderFailure, resp.StatusCode)
	}
}

// isRateLimited is the retry predicate for search requests
func isRateLimited(err error) bool {
	return errors.Is(err, domain.ErrRateLimited)
}

// isTransient is the retry predicate for detail requests
func isTransient(err error) bool {
	return errors.Is(err, domain.ErrRateLimited) || errors.Is(err, domain.ErrProviderUnreachable)
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}
