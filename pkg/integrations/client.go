package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"

	"github.com/relaxicons/relaxicons/pkg/cache"
	"github.com/relaxicons/relaxicons/pkg/httputil"
	"github.com/relaxicons/relaxicons/pkg/observability"
)

// Entry is what the client stores per remote resource.
type Entry struct {
	Timestamp time.Time `json:"ts"`
	ETag      string    `json:"etag,omitempty"`
	Payload   []byte    `json:"data"`
}

// Response is a fetched payload and where it came from.
type Response struct {
	Payload   []byte
	FromCache bool // served from the cache (fresh, revalidated or stale)
	Stale     bool // origin failed and an old entry was served instead
}

// Options configures a Client. Zero values select defaults.
type Options struct {
	HTTPClient *http.Client
	Cache      cache.Cache
	TTL        time.Duration
	Retry      *httputil.Policy
	Headers    map[string]string
	Logger     *log.Logger
	Now        func() time.Time
}

// Client provides shared HTTP functionality for the registry client.
// It handles caching with ETag revalidation, retry logic, and common request
// headers.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	ttl     time.Duration
	retry   httputil.Policy
	headers map[string]string
	logger  *log.Logger
	now     func() time.Time
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	c := &Client{
		http:    opts.HTTPClient,
		cache:   opts.Cache,
		ttl:     opts.TTL,
		retry:   httputil.DefaultPolicy(),
		headers: opts.Headers,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if c.http == nil {
		c.http = NewHTTPClient()
	}
	if c.cache == nil {
		c.cache = cache.NewNullCache()
	}
	if c.ttl <= 0 {
		c.ttl = DefaultTTL
	}
	if opts.Retry != nil {
		c.retry = *opts.Retry
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Fetch returns the payload at rawURL, going through the cache stored under
// key. keyType labels cache events ("icon", "collection").
//
//  1. A fresh entry without an ETag is returned without a request.
//  2. Otherwise a conditional GET is sent (If-None-Match when an ETag is
//     stored). 304 refreshes the entry's timestamp only.
//  3. A 2xx response replaces the entry.
//  4. Any failure other than 404 falls back to the stored payload if there
//     is one.
func (c *Client) Fetch(ctx context.Context, keyType, key, rawURL string) (*Response, error) {
	entry, cached := c.load(ctx, key)
	if cached && entry.ETag == "" && c.now().Sub(entry.Timestamp) < c.ttl {
		observability.Cache().OnCacheHit(ctx, keyType)
		return &Response{Payload: entry.Payload, FromCache: true}, nil
	}
	if !cached {
		observability.Cache().OnCacheMiss(ctx, keyType)
	}

	etag := ""
	if cached {
		etag = entry.ETag
	}

	res, err := c.request(ctx, rawURL, etag)
	switch {
	case err == nil && res.notModified && cached:
		entry.Timestamp = c.now()
		c.store(ctx, keyType, key, entry)
		c.logger.Debug("revalidated", "key", key)
		return &Response{Payload: entry.Payload, FromCache: true}, nil
	case err == nil && res.notModified:
		err = &StatusError{Status: http.StatusNotModified, URL: rawURL}
	case err == nil:
		c.store(ctx, keyType, key, Entry{Timestamp: c.now(), ETag: res.etag, Payload: res.body})
		return &Response{Payload: res.body}, nil
	}

	if errors.Is(err, ErrNotFound) || ctx.Err() != nil || !cached {
		return nil, err
	}
	observability.Cache().OnCacheStale(ctx, keyType, err)
	c.logger.Warn("registry unavailable, using cached copy", "key", key, "err", err)
	return &Response{Payload: entry.Payload, FromCache: true, Stale: true}, nil
}

// GetJSON fetches rawURL through the cache and JSON-decodes the payload into v.
func (c *Client) GetJSON(ctx context.Context, keyType, key, rawURL string, v any) error {
	resp, err := c.Fetch(ctx, keyType, key, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Payload, v); err != nil {
		return fmt.Errorf("decode %s: %w", rawURL, err)
	}
	return nil
}

// GetText fetches rawURL through the cache and returns the payload as a string.
func (c *Client) GetText(ctx context.Context, keyType, key, rawURL string) (string, error) {
	resp, err := c.Fetch(ctx, keyType, key, rawURL)
	if err != nil {
		return "", err
	}
	return string(resp.Payload), nil
}

// Cache returns the backing cache.
func (c *Client) Cache() cache.Cache {
	return c.cache
}

func (c *Client) load(ctx context.Context, key string) (Entry, bool) {
	data, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Debug("cache read failed", "key", key, "err", err)
		return Entry{}, false
	}
	if !ok {
		return Entry{}, false
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, false
	}
	return e, true
}

func (c *Client) store(ctx context.Context, keyType, key string, e Entry) {
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, 0); err != nil {
		c.logger.Debug("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

type result struct {
	body        []byte
	etag        string
	notModified bool
}

// request runs one logical GET under both retry schedules. Transport
// failures are retried on the network schedule; once that is exhausted the
// failure is final and the status schedule does not retry it again.
func (c *Client) request(ctx context.Context, rawURL, etag string) (*result, error) {
	var out *result
	err := c.retry.RetryStatus(ctx, func() error {
		err := c.retry.RetryNetwork(ctx, func() error {
			r, err := c.do(ctx, rawURL, etag)
			if err != nil {
				return err
			}
			out = r
			return nil
		})
		if err == nil {
			return nil
		}

		var se *StatusError
		if errors.As(err, &se) && se.Retryable() {
			return httputil.Retryable(se)
		}
		var re *httputil.RetryableError
		if errors.As(err, &re) {
			return re.Err
		}
		return err
	})
	return out, err
}

func (c *Client) do(ctx context.Context, rawURL, etag string) (*result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	host, path := hostPath(rawURL)
	observability.HTTP().OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, httputil.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotModified:
		return &result{notModified: true}, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, httputil.Retryable(fmt.Errorf("%w: read body: %v", ErrNetwork, err))
		}
		return &result{body: body, etag: resp.Header.Get("ETag")}, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, rawURL)
	default:
		return nil, &StatusError{Status: resp.StatusCode, URL: rawURL}
	}
}

func hostPath(rawURL string) (string, string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.Path
}
