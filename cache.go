package regolith

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded cache of compiled patterns, keyed by pattern and flag
// string. It is safe for concurrent use. The least recently used pattern is
// evicted when the cache is full.
//
// Cached values are immutable, so callers asking for the same pattern share
// one RegExp without affecting each other.
//
// Example:
//
//	cache, err := regolith.NewCache(256, regolith.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re, err := cache.Get(userPattern, userFlags)
type Cache struct {
	config  Config
	entries *lru.Cache[cacheKey, *RegExp]
}

type cacheKey struct {
	pattern string
	flags   string
}

// NewCache returns a cache holding at most size patterns compiled with
// config. size must be positive.
func NewCache(size int, config Config) (*Cache, error) {
	entries, err := lru.New[cacheKey, *RegExp](size)
	if err != nil {
		return nil, err
	}
	return &Cache{config: config, entries: entries}, nil
}

// Get returns the compiled pattern, compiling and caching it on a miss.
// Compile errors are returned and not cached.
func (c *Cache) Get(pattern, flags string) (*RegExp, error) {
	key := cacheKey{pattern: pattern, flags: flags}
	if re, ok := c.entries.Get(key); ok {
		return re, nil
	}

	re, err := CompileWithConfig(pattern, flags, c.config)
	if err != nil {
		return nil, err
	}
	// Another goroutine may have cached the same key meanwhile; keep its value.
	if prev, ok, _ := c.entries.PeekOrAdd(key, re); ok {
		return prev, nil
	}
	return re, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge removes every cached pattern.
func (c *Cache) Purge() {
	c.entries.Purge()
}
