// Package rates looks up exchange rates between supported currencies and
// converts money with them, falling back to 1:1 when a lookup fails.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ImJustSebas/University-budget-manager/internal/currency"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the public endpoint; the source code is appended.
	DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest/"
	maxBodySize    = 1 << 20 // 1 MB
	userAgent      = "stipend/1.0"
)

var (
	// ErrUnexpectedStatus indicates a non-2xx response.
	ErrUnexpectedStatus = errors.New("rates: unexpected status")
	// ErrMissingRate indicates the response had no rate for the target code.
	ErrMissingRate = errors.New("rates: target currency missing from response")
	// ErrInvalidRate indicates a zero or negative rate.
	ErrInvalidRate = errors.New("rates: rate is not positive")
	// ErrOffline is returned by the Offline source.
	ErrOffline = errors.New("rates: offline mode")
)

// Source fetches the rate that converts one unit of from into to.
type Source interface {
	Rate(ctx context.Context, from, to currency.Code) (decimal.Decimal, error)
}

// Client fetches rates from an exchangerate-api compatible endpoint.
// It makes exactly one request per call: no retries, no caching.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for baseURL, or DefaultBaseURL when empty.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// Rate implements Source.
func (c *Client) Rate(ctx context.Context, from, to currency.Code) (decimal.Decimal, error) {
	latest, err := c.Latest(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}
	return latest.RateFor(to)
}

// Latest returns the full rate table keyed by base.
func (c *Client) Latest(ctx context.Context, base currency.Code) (*LatestResponse, error) {
	body, err := c.get(ctx, string(base))
	if err != nil {
		return nil, err
	}

	var latest LatestResponse
	if err := json.Unmarshal(body, &latest); err != nil {
		return nil, fmt.Errorf("rates: parsing response: %w", err)
	}
	if latest.Rates == nil {
		return nil, fmt.Errorf("rates: parsing response: no rates table")
	}
	return &latest, nil
}

// get performs a GET request for path and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("rates: creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	log.Debug().Str("url", url).Msg("fetching exchange rates")

	//nolint:gosec // URL is built from a configured base and a validated currency code
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("exchange rate response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("rates: reading response: %w", err)
	}
	return body, nil
}

// Offline is a Source that never reaches the network.
type Offline struct{}

// Rate implements Source.
func (Offline) Rate(context.Context, currency.Code, currency.Code) (decimal.Decimal, error) {
	return decimal.Zero, ErrOffline
}
