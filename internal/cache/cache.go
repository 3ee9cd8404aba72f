// Package cache provides a bounded, TTL-based in-process memoization layer.
// Entries are never invalidated on write; staleness is bounded by the TTL.
package cache

import (
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSize = 500
	DefaultTTL  = 60 * time.Second
)

// Cache is a size-bounded LRU whose entries expire after a fixed TTL.
// It is safe for concurrent use.
type Cache[V any] struct {
	lru *expirable.LRU[string, V]
	ttl time.Duration
}

// New creates a cache holding at most size entries for ttl each.
// Non-positive values fall back to DefaultSize and DefaultTTL.
func New[V any](size int, ttl time.Duration) *Cache[V] {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[V]{
		lru: expirable.NewLRU[string, V](size, nil, ttl),
		ttl: ttl,
	}
}

// Get returns the cached value and marks it recently used.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

// Set stores v under key, evicting the least recently used entry when full.
func (c *Cache[V]) Set(key string, v V) {
	c.lru.Add(key, v)
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int { return c.lru.Len() }

// Purge drops every entry.
func (c *Cache[V]) Purge() { c.lru.Purge() }

// TTL returns the entry lifetime.
func (c *Cache[V]) TTL() time.Duration { return c.ttl }

// keyEscaper escapes the separators of Key inside parameter names and values.
var keyEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`, `:`, `\:`)

// Key builds a canonical cache key: "prefix:" followed by "k:v" pairs joined
// by "|" in lexicographic key order, so parameter maps that differ only in
// insertion order map to the same key. Separators inside names and values are
// backslash-escaped.
func Key(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte(':')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(keyEscaper.Replace(k))
		b.WriteByte(':')
		b.WriteString(keyEscaper.Replace(params[k]))
	}
	return b.String()
}
