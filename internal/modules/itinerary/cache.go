// README: Redis-backed response cache for repeated identical requests.
package itinerary

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores generated itineraries keyed by the normalized request. It is
// strictly best-effort: a Redis outage degrades to calling the gateway again.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func cacheKey(req TripRequest) string {
	raw := fmt.Sprintf("%s|%d|%.2f|%s",
		strings.ToLower(strings.TrimSpace(req.Destination)), req.Days, req.Budget, req.Currency)
	sum := sha256.Sum256([]byte(raw))
	return "itinerary:" + hex.EncodeToString(sum[:])
}

func (c *Cache) Get(ctx context.Context, req TripRequest) (*Itinerary, bool) {
	data, err := c.rdb.Get(ctx, cacheKey(req)).Bytes()
	if err != nil {
		return nil, false
	}
	var it Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		return nil, false
	}
	return &it, true
}

func (c *Cache) Put(ctx context.Context, req TripRequest, it *Itinerary) {
	data, err := json.Marshal(it)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, cacheKey(req), data, c.ttl).Err()
}
