package query

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"datacat/internal/domain"
)

// CacheLimit is the number of distinct queries kept by the filter cache.
const CacheLimit = 50

// resultCache maps an exact query string to its filtered records. Eviction
// is by insertion order; a hit does not refresh an entry.
type resultCache struct {
	limit   int
	entries *orderedmap.OrderedMap[string, []domain.Record]
}

func newResultCache(limit int) *resultCache {
	if limit <= 0 {
		limit = CacheLimit
	}
	return &resultCache{
		limit:   limit,
		entries: orderedmap.New[string, []domain.Record](),
	}
}

func (c *resultCache) get(query string) ([]domain.Record, bool) {
	return c.entries.Get(query)
}

func (c *resultCache) put(query string, records []domain.Record) {
	c.entries.Set(query, records)
	for c.entries.Len() > c.limit {
		oldest := c.entries.Oldest()
		c.entries.Delete(oldest.Key)
	}
}

func (c *resultCache) has(query string) bool {
	_, ok := c.entries.Get(query)
	return ok
}

func (c *resultCache) len() int {
	return c.entries.Len()
}

func (c *resultCache) clear() {
	c.entries = orderedmap.New[string, []domain.Record]()
}
