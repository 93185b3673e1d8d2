// Package deliverylog keeps a short-lived in-memory record of relay outcomes.
package deliverylog

import (
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
)

// Record is one relay attempt as seen by the delivery log.
type Record struct {
	RequestID  string    `json:"requestId"`
	Route      string    `json:"route"`
	Outcome    string    `json:"outcome"`
	StatusCode int       `json:"statusCode,omitempty"`
	DurationMs int64     `json:"durationMs"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Log is a TTL-bounded delivery log keyed by request id.
type Log struct {
	cache *cache.Cache
}

// New creates a delivery log whose records expire after ttl.
func New(ttl time.Duration) *Log {
	return &Log{
		cache: cache.New(ttl, 2*ttl),
	}
}

// Add stores rec until it expires. Records without a request id are dropped.
func (l *Log) Add(rec Record) {
	if rec.RequestID == "" {
		return
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	l.cache.SetDefault(rec.RequestID, rec)
}

// Get returns the record for requestID if it has not expired.
func (l *Log) Get(requestID string) (Record, bool) {
	item, found := l.cache.Get(requestID)
	if !found {
		return Record{}, false
	}
	return item.(Record), true
}

// List returns unexpired records newest first, optionally filtered by route.
func (l *Log) List(route string) []Record {
	items := l.cache.Items()
	records := make([]Record, 0, len(items))
	for _, item := range items {
		rec := item.Object.(Record)
		if route != "" && rec.Route != route {
			continue
		}
		records = append(records, rec)
	}
	slices.SortFunc(records, func(a, b Record) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return records
}
