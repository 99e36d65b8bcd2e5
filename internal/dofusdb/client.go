package dofusdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/osse101/CraftPlanner_Go/internal/domain"
	"github.com/osse101/CraftPlanner_Go/internal/metrics"
)

// errNotFound marks a 404 from the API. Callers translate it into the
// domain error that fits the lookup.
var errNotFound = errors.New("not found")

// Config configures a Client. Zero values fall back to the package defaults.
type Config struct {
	BaseURL           string
	Game              string
	Language          string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	CacheSize         int
	CacheTTL          time.Duration
	MaxConcurrency    int
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Game == "" {
		c.Game = DefaultGame
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Burst <= 0 {
		c.Burst = DefaultBurst
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
	return c
}

// Client talks to the dofusdu.de item database.
// It is safe for concurrent use.
type Client struct {
	cfg         Config
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	items       *lookupCache[*domain.Item]
	ingredients *lookupCache[domain.IngredientRef]
	flight      singleflight.Group
}

// NewClient creates a new item database client.
// A non-positive RequestsPerSecond disables throttling.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		rateLimiter: rate.NewLimiter(limit, cfg.Burst),
		items:       newLookupCache[*domain.Item](cfg.CacheSize, cfg.CacheTTL),
		ingredients: newLookupCache[domain.IngredientRef](cfg.CacheSize, cfg.CacheTTL),
	}
}

// shared runs fn once for every concurrent caller with the same key. fn runs on
// a context detached from the caller's cancellation and bounded by requests
// times the client timeout. A cancelled caller stops waiting without
// cancelling fn for the others.
func (c *Client) shared(ctx context.Context, key string, requests int, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	ch := c.flight.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Duration(requests)*c.cfg.Timeout)
		defer cancel()
		return fn(fetchCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// endpoint builds /{game}/v1/{lang}/{path}
func (c *Client) endpoint(path string, query url.Values) string {
	u := fmt.Sprintf("%s/%s/v1/%s/%s", c.cfg.BaseURL, c.cfg.Game, c.cfg.Language, strings.TrimLeft(path, "/"))
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// getJSON performs a throttled GET and decodes the body into result.
// A 404 returns errNotFound; any other failure wraps domain.ErrResolutionFailed.
func (c *Client) getJSON(ctx context.Context, category, path string, query url.Values, result interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf(ErrMsgRateLimiterFailed, err)
	}

	target := c.endpoint(path, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf(ErrMsgCreateRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ResolverRequests.WithLabelValues(category, metrics.OutcomeError).Inc()
		return fmt.Errorf(ErrMsgRequestFailedFmt, path, err, domain.ErrResolutionFailed)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.ResolverRequests.WithLabelValues(category, metrics.OutcomeNotFound).Inc()
		_, _ = io.Copy(io.Discard, resp.Body)
		return errNotFound
	case resp.StatusCode != http.StatusOK:
		metrics.ResolverRequests.WithLabelValues(category, metrics.OutcomeError).Inc()
		_, _ = io.Copy(io.Discard, resp.Body)
		statusErr := fmt.Errorf(domain.ErrMsgUpstreamStatusFmt, resp.StatusCode)
		return fmt.Errorf(ErrMsgRequestFailedFmt, path, statusErr, domain.ErrResolutionFailed)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		metrics.ResolverRequests.WithLabelValues(category, metrics.OutcomeError).Inc()
		return fmt.Errorf(ErrMsgDecodeFailedFmt, path, err, domain.ErrResolutionFailed)
	}

	metrics.ResolverRequests.WithLabelValues(category, metrics.OutcomeOK).Inc()
	return nil
}
