package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargopanel/dashboard-gateway/internal/api/metrics"
	"github.com/cargopanel/dashboard-gateway/internal/gateway"
)

// Doer issues one upstream request. *gateway.Client implements it.
type Doer interface {
	Do(ctx context.Context, method, endpoint string, query url.Values, body io.Reader) (*gateway.Response, error)
}

// Cache holds the entries shared by all fetchers. Invalidation may be called
// from anywhere in the system, typically after a mutation.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	maxAge  time.Duration
	now     func() time.Time
}

// NewCache builds a Cache with the given freshness window (DefaultMaxAge
// when zero).
func NewCache(maxAge time.Duration) *Cache {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Cache{
		entries: make(map[string]*entry),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

func (c *Cache) entryFor(key Key) *entry {
	id := key.canonical()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: key}
		c.entries[id] = e
	}
	return e
}

// Peek returns a snapshot of the entry for key without triggering a fetch.
func (c *Cache) Peek(key Key) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key.canonical()]
	if !ok {
		return Result{Status: Idle}
	}
	return Result{Data: e.data, Err: e.err, Status: e.status, FetchedAt: e.fetchedAt, Stale: e.stale}
}

// Invalidate marks the given keys stale. The next Fetch for a stale key
// issues a new request; any request already in flight for it is detached and
// its eventual response discarded by the generation guard.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		if e, ok := c.entries[key.canonical()]; ok {
			c.invalidateEntry(e)
		}
	}
}

// InvalidatePrefix marks every key starting with prefix stale.
func (c *Cache) InvalidatePrefix(prefix Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			c.invalidateEntry(e)
		}
	}
}

func (c *Cache) invalidateEntry(e *entry) {
	e.stale = true
	// Supersede any request already in flight: its completion no longer
	// matches the generation and cannot write itself over the stale mark.
	e.generation++
	e.inflight = nil
}

// Request describes one cached read.
type Request struct {
	// Key identifies the logical query for dedup and caching.
	Key Key
	// Endpoint is the upstream path; Method defaults to GET.
	Endpoint string
	Method   string
	// Params become the query string. Entries with nil values are dropped
	// entirely, never serialized; the rest are coerced with fmt.Sprint.
	Params map[string]any
	Body   io.Reader
	// Transform maps the raw response body to the cached value. Defaults to
	// returning the body bytes.
	Transform func(body []byte) (any, error)
}

// Fetcher composes the request gateway with the shared cache.
type Fetcher struct {
	cache  *Cache
	client Doer
	log    zerolog.Logger
}

func NewFetcher(cache *Cache, client Doer, log zerolog.Logger) *Fetcher {
	return &Fetcher{cache: cache, client: client, log: log}
}

// Cache exposes the underlying cache for invalidation after mutations.
func (f *Fetcher) Cache() *Cache {
	return f.cache
}

// Fetch returns the cached value for req.Key, issuing at most one upstream
// request per key at a time. A fresh Success entry is served without network
// traffic; an in-flight request is joined; otherwise a new request is issued
// under a new generation.
func (f *Fetcher) Fetch(ctx context.Context, req Request) (any, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	c := f.cache
	c.mu.Lock()
	e := c.entryFor(req.Key)

	if e.status == Success && !e.stale && c.now().Sub(e.fetchedAt) < c.maxAge {
		c.mu.Unlock()
		metrics.CacheResultsTotal.WithLabelValues("hit").Inc()
		return e.data, nil
	}

	if e.inflight != nil {
		cl := e.inflight
		c.mu.Unlock()
		metrics.CacheResultsTotal.WithLabelValues("join").Inc()
		select {
		case <-cl.done:
			return cl.data, cl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	e.generation++
	gen := e.generation
	cl := &call{done: make(chan struct{})}
	e.inflight = cl
	if e.status != Success {
		e.status = Loading
	}
	c.mu.Unlock()
	metrics.CacheResultsTotal.WithLabelValues("miss").Inc()

	data, err := f.perform(ctx, method, req)
	cl.data, cl.err = data, err

	c.mu.Lock()
	if e.generation == gen {
		if e.inflight == cl {
			e.inflight = nil
		}
		if err != nil {
			e.err = err
			e.status = Error
		} else {
			e.data = data
			e.err = nil
			e.status = Success
			e.stale = false
			e.fetchedAt = c.now()
		}
	} else {
		// Superseded while in flight: this response is stale. Its waiters
		// still get it, but the entry keeps the newer generation's state.
		metrics.CacheResultsTotal.WithLabelValues("stale_discard").Inc()
		f.log.Debug().Str("key", req.Key.canonical()).Msg("discarding superseded response")
	}
	c.mu.Unlock()

	close(cl.done)
	return data, err
}

func (f *Fetcher) perform(ctx context.Context, method string, req Request) (any, error) {
	query := url.Values{}
	for k, v := range req.Params {
		if v == nil {
			continue
		}
		query.Set(k, fmt.Sprint(v))
	}

	resp, err := f.client.Do(ctx, method, req.Endpoint, query, req.Body)
	if err != nil {
		return nil, err
	}

	if req.Transform == nil {
		return resp.Body, nil
	}
	return req.Transform(resp.Body)
}
