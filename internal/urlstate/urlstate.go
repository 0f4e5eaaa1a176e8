// Package urlstate keeps pagination, search and filter state in the
// navigable address's query string instead of duplicating it in component
// state.
package urlstate

import (
	"net/url"
	"sync"
)

// Address abstracts the navigable address's query component. ReplaceQuery
// must swap the whole query string in one navigation event.
type Address interface {
	Query() url.Values
	ReplaceQuery(url.Values)
}

// Synchronizer merges partial query updates into the address. Every mutation
// re-reads the latest address state before merging, so rapid sequential
// writers (debounced search plus a page reset, say) never clobber each
// other's keys.
type Synchronizer struct {
	mu   sync.Mutex
	addr Address
}

func New(addr Address) *Synchronizer {
	return &Synchronizer{addr: addr}
}

// Current returns a snapshot of the query parameters, first value per key.
func (s *Synchronizer) Current() map[string]string {
	out := map[string]string{}
	for k, vs := range s.addr.Query() {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// SetQueries merges partial into the current query state. A nil value deletes
// the key; everything not named in partial is preserved. The merged result
// replaces the address query atomically.
func (s *Synchronizer) SetQueries(partial map[string]*string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.addr.Query()
	for k, v := range partial {
		if v == nil {
			q.Del(k)
			continue
		}
		q.Set(k, *v)
	}
	s.addr.ReplaceQuery(q)
}

// RemoveQueries deletes the named keys, preserving the rest.
func (s *Synchronizer) RemoveQueries(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.addr.Query()
	for _, k := range keys {
		q.Del(k)
	}
	s.addr.ReplaceQuery(q)
}

// ClearQueries removes all query parameters.
func (s *Synchronizer) ClearQueries() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addr.ReplaceQuery(url.Values{})
}

// String returns a pointer to v, for building SetQueries partials inline.
func String(v string) *string {
	return &v
}

// URLAddress adapts a *url.URL to the Address interface. Handlers use it to
// derive canonical self and paging links from the incoming request address.
type URLAddress struct {
	mu sync.Mutex
	u  *url.URL
}

// NewURLAddress wraps a copy of u, leaving the caller's URL untouched.
func NewURLAddress(u *url.URL) *URLAddress {
	cp := *u
	return &URLAddress{u: &cp}
}

func (a *URLAddress) Query() url.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.u.Query()
}

func (a *URLAddress) ReplaceQuery(q url.Values) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.u.RawQuery = q.Encode()
}

// String renders the current address including its query string.
func (a *URLAddress) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.u.String()
}
