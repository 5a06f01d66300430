package numfmt

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// FormatterCache maps formatter keys to constructed formatters. Entries are
// immutable; dropping one only costs a reconstruction.
type FormatterCache interface {
	Get(key FormatterKey) (NumberFormatter, bool)
	Add(key FormatterKey, formatter NumberFormatter)
	Len() int
}

// mapCache never evicts.
type mapCache struct {
	entries map[FormatterKey]NumberFormatter
}

var _ FormatterCache = &mapCache{}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[FormatterKey]NumberFormatter)}
}

func (c *mapCache) Get(key FormatterKey) (NumberFormatter, bool) {
	f, ok := c.entries[key]
	return f, ok
}

func (c *mapCache) Add(key FormatterKey, formatter NumberFormatter) {
	c.entries[key] = formatter
}

func (c *mapCache) Len() int {
	return len(c.entries)
}

// lruCache bounds the number of live formatters, evicting the least recently
// used entry once size is reached.
type lruCache struct {
	entries *lru.Cache[FormatterKey, NumberFormatter]
}

var _ FormatterCache = &lruCache{}

func newLRUCache(size int) (*lruCache, error) {
	entries, err := lru.New[FormatterKey, NumberFormatter](size)
	if err != nil {
		return nil, fmt.Errorf("numfmt: formatter cache: %w", err)
	}
	return &lruCache{entries: entries}, nil
}

func (c *lruCache) Get(key FormatterKey) (NumberFormatter, bool) {
	return c.entries.Get(key)
}

func (c *lruCache) Add(key FormatterKey, formatter NumberFormatter) {
	c.entries.Add(key, formatter)
}

func (c *lruCache) Len() int {
	return c.entries.Len()
}

func newFormatterCache(size int) (FormatterCache, error) {
	if size <= 0 {
		return newMapCache(), nil
	}
	return newLRUCache(size)
}
