package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cacheable values can be looked up under several keys. The first key is the
// primary one, the others are aliases.
type Cacheable interface {
	CacheKeys() []string
}

// MultiIndexCache is an expiring LRU cache where each entry is reachable
// through all of its keys. Aliases do not count against the cache size.
type MultiIndexCache[V Cacheable] struct {
	entries *expirable.LRU[string, V]

	// aliasesMu is never held while calling into entries, as its eviction
	// callback takes it.
	aliasesMu sync.Mutex
	aliases   map[string]string
}

func NewMultiIndexCache[V Cacheable](size int, ttl time.Duration) *MultiIndexCache[V] {
	c := &MultiIndexCache[V]{
		aliases: make(map[string]string),
	}

	c.entries = expirable.NewLRU(size, c.onEvict, ttl)

	return c
}

func (c *MultiIndexCache[V]) onEvict(primary string, value V) {
	c.aliasesMu.Lock()
	defer c.aliasesMu.Unlock()

	for _, key := range value.CacheKeys() {
		if c.aliases[key] == primary {
			delete(c.aliases, key)
		}
	}
}

func (c *MultiIndexCache[V]) Add(item V) {
	keys := item.CacheKeys()
	if len(keys) == 0 {
		return
	}

	primary := keys[0]

	c.entries.Add(primary, item)

	c.aliasesMu.Lock()
	defer c.aliasesMu.Unlock()

	for _, key := range keys {
		c.aliases[key] = primary
	}
}

func (c *MultiIndexCache[V]) Get(key string) (V, bool) {
	primary, exists := c.lookup(key)
	if !exists {
		var zero V
		return zero, false
	}

	return c.entries.Get(primary)
}

// Remove drops the entry reachable through key, with all of its aliases.
func (c *MultiIndexCache[V]) Remove(key string) {
	primary, exists := c.lookup(key)
	if !exists {
		return
	}

	c.entries.Remove(primary)
}

func (c *MultiIndexCache[V]) lookup(key string) (string, bool) {
	c.aliasesMu.Lock()
	defer c.aliasesMu.Unlock()

	primary, exists := c.aliases[key]
	return primary, exists
}

func (c *MultiIndexCache[V]) Len() int {
	return c.entries.Len()
}
