// Package store provides the in-memory collections backing the interview and job boards.
// Collections are seeded at construction and reset whenever the process restarts.
package store

import (
	"strings"
	"sync"
	"time"
)

// Record is an entity that can live in a Collection.
type Record[T any] interface {
	RecordID() int
	// SearchFields returns the text fields a query is matched against.
	SearchFields() []string
	// Clone returns a copy sharing no mutable state with the receiver.
	Clone() T
}

// Collection is an ordered, append-only set of records. Reads hand out
// clones so callers can never modify stored rows.
type Collection[T Record[T]] struct {
	mu    sync.RWMutex
	items []T
	now   func() time.Time
}

// NewCollection creates a collection holding copies of the seed rows.
func NewCollection[T Record[T]](seed []T, now func() time.Time) *Collection[T] {
	if now == nil {
		now = time.Now
	}
	items := make([]T, 0, len(seed))
	for _, item := range seed {
		items = append(items, item.Clone())
	}
	return &Collection[T]{items: items, now: now}
}

// List returns every record in insertion order when query is empty, otherwise
// the records where at least one search field contains query, ignoring case.
func (c *Collection[T]) List(query string) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(query)
	result := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if needle == "" || matches(item.SearchFields(), needle) {
			result = append(result, item.Clone())
		}
	}
	return result
}

func matches(fields []string, needle string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Get returns the record with the given id. A missing record is reported
// through ok, not as an error.
func (c *Collection[T]) Get(id int) (record T, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.RecordID() == id {
			return item.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Create assigns the next id (max existing id + 1) and today's date, builds
// the record, appends it and returns a copy of what was stored.
func (c *Collection[T]) Create(build func(id int, date string) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	maxID := 0
	for _, item := range c.items {
		maxID = max(maxID, item.RecordID())
	}

	record := build(maxID+1, c.now().UTC().Format(time.DateOnly))
	c.items = append(c.items, record.Clone())
	return record.Clone()
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
