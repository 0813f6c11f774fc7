// Package rates looks up the EUR→ILS exchange rate for a given value
// date. The rate is advisory input to the receipt form: lookups never
// block or fail a mutation, and any failure falls back to the last-known
// rate, then to a fixed default.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
)

// DefaultRate is used until a live rate has been fetched at least once.
const DefaultRate = 3.98

const (
	cacheTTL    = 24 * time.Hour
	maxRetries  = 2
	retryDelay  = 500 * time.Millisecond
	fetchWindow = 10 * time.Second
)

type cachedRate struct {
	rate    float64
	fetched time.Time
}

// Client fetches EUR→ILS rates from frankfurter.app, caching per value
// date and serving stale data on error.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu        sync.RWMutex
	cache     map[string]cachedRate
	lastKnown float64
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: fetchWindow},
		baseURL:    "https://api.frankfurter.app",
		cache:      make(map[string]cachedRate),
		lastKnown:  DefaultRate,
	}
}

// Rate returns the EUR→ILS rate for an ISO YYYY-MM-DD value date. It
// never returns an error: on lookup failure the cached rate for that
// date, then the last rate seen for any date, then DefaultRate apply.
func (c *Client) Rate(ctx context.Context, date string) float64 {
	c.mu.RLock()
	if cached, ok := c.cache[date]; ok && time.Since(cached.fetched) < cacheTTL {
		c.mu.RUnlock()
		return cached.rate
	}
	c.mu.RUnlock()

	rate, err := c.fetch(ctx, date)
	if err != nil {
		c.mu.RLock()
		defer c.mu.RUnlock()
		if cached, ok := c.cache[date]; ok {
			return cached.rate
		}
		return c.lastKnown
	}

	c.mu.Lock()
	c.cache[date] = cachedRate{rate: rate, fetched: time.Now()}
	c.lastKnown = rate
	c.mu.Unlock()
	return rate
}

type apiResponse struct {
	Rates struct {
		ILS float64 `json:"ILS"`
	} `json:"rates"`
}

func (c *Client) fetch(ctx context.Context, date string) (float64, error) {
	url := fmt.Sprintf("%s/%s?from=EUR&to=ILS", c.baseURL, date)

	var rate float64
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return retry.RetryableError(fmt.Errorf("rate lookup: status %d", resp.StatusCode))
		}

		var parsed apiResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return fmt.Errorf("decode rate response: %w", err)
		}
		if parsed.Rates.ILS <= 0 {
			return fmt.Errorf("rate lookup: no ILS rate in response")
		}
		rate = parsed.Rates.ILS
		return nil
	})
	if err != nil {
		return 0, err
	}
	return rate, nil
}
