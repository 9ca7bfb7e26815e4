package weather

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// summaryCache keeps recent summaries per rounded coordinate with
// time-based expiration
type summaryCache struct {
	lru *expirable.LRU[string, string]
}

func newSummaryCache(size int, ttl time.Duration) *summaryCache {
	return &summaryCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func cacheKey(latitude, longitude float64) string {
	return strconv.FormatFloat(latitude, 'f', coordinatePrecision, 64) + ":" +
		strconv.FormatFloat(longitude, 'f', coordinatePrecision, 64)
}

func (c *summaryCache) Get(latitude, longitude float64) (string, bool) {
	return c.lru.Get(cacheKey(latitude, longitude))
}

func (c *summaryCache) Set(latitude, longitude float64, summary string) {
	c.lru.Add(cacheKey(latitude, longitude), summary)
}
