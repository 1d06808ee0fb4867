package syntax

import lru "github.com/hashicorp/golang-lru/v2"

// MinCacheCapacity is the floor on the tokenization cache size mandated by
// spec §4.4 ("a minimum capacity of 20,000 entries").
const MinCacheCapacity = 20000

// cacheKey is the full memoization key: (line_text, lexer_id,
// has_custom_rules), matching spec §4.4 exactly.
type cacheKey struct {
	text         string
	lexerID      string
	hasCustomRules bool
}

type tokenCache struct {
	lru *lru.Cache[cacheKey, []Segment]
}

func newTokenCache(capacity int) *tokenCache {
	if capacity < MinCacheCapacity {
		capacity = MinCacheCapacity
	}
	c, _ := lru.New[cacheKey, []Segment](capacity)
	return &tokenCache{lru: c}
}

func (c *tokenCache) get(k cacheKey) ([]Segment, bool) {
	return c.lru.Get(k)
}

func (c *tokenCache) put(k cacheKey, segs []Segment) {
	c.lru.Add(k, segs)
}

func (c *tokenCache) len() int {
	return c.lru.Len()
}

func (c *tokenCache) purge() {
	c.lru.Purge()
}
