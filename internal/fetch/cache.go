// Package fetch deduplicates and caches reads against the cargo backend.
//
// Each logical query is identified by an ordered Key. Per key, at most one
// request is in flight at a time; concurrent callers ride the same request
// and receive the same resolved value. Responses are guarded by a per-key
// generation counter: a response belonging to a superseded generation is
// delivered to its own waiters but never written over fresher cached data.
package fetch

import (
	"fmt"
	"strings"
	"time"
)

// Key is the ordered tuple of primitive values identifying a logical query,
// e.g. Key{"parties", "searchterm", 2}.
type Key []any

// canonical renders the key as a cache-map index. The unit separator keeps
// Key{"a", "bc"} distinct from Key{"ab", "c"}.
func (k Key) canonical() string {
	parts := make([]string, len(k))
	for i, v := range k {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "\x1f")
}

// HasPrefix reports whether k starts with the elements of prefix.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, v := range prefix {
		if fmt.Sprint(k[i]) != fmt.Sprint(v) {
			return false
		}
	}
	return true
}

// Status is the lifecycle state of a cache entry.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// Result is a read-only snapshot of a cache entry. While a refetch for an
// invalidated key is in flight, Data still holds the previous value and
// Stale is true, so consumers can keep displaying it until the refetch
// resolves.
type Result struct {
	Data      any
	Err       error
	Status    Status
	FetchedAt time.Time
	Stale     bool
}

type call struct {
	done chan struct{}
	data any
	err  error
}

type entry struct {
	key       Key
	data      any
	err       error
	status    Status
	fetchedAt time.Time
	stale     bool
	// generation counts issued requests for this key; a completing request
	// whose generation no longer matches has been superseded and must not
	// overwrite the entry.
	generation uint64
	inflight   *call
}

// DefaultMaxAge is the freshness window applied when NewCache gets zero.
const DefaultMaxAge = 30 * time.Second
