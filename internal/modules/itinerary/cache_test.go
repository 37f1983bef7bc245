// README: Redis-backed cache tests (integration, gated on a live instance).
package itinerary

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestCacheKeyNormalization(t *testing.T) {
	a := cacheKey(TripRequest{Destination: "  Kyoto, Japan ", Days: 3, Budget: 900, Currency: "USD"})
	b := cacheKey(TripRequest{Destination: "kyoto, japan", Days: 3, Budget: 900, Currency: "USD"})
	if a != b {
		t.Errorf("expected case/space-insensitive keys, got %s vs %s", a, b)
	}

	c := cacheKey(TripRequest{Destination: "Kyoto, Japan", Days: 4, Budget: 900, Currency: "USD"})
	if a == c {
		t.Error("expected different days to produce a different key")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	redisAddr := os.Getenv("TRIPWEAVER_REDIS_ADDR")
	if redisAddr == "" {
		t.Skip("TRIPWEAVER_REDIS_ADDR not set; skipping integration test")
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()

	cache := NewCache(rdb, time.Minute)
	ctx := context.Background()
	req := TripRequest{Destination: "Kyoto, Japan", Days: 3, Budget: 900, Currency: "USD"}

	if _, ok := cache.Get(ctx, req); ok {
		// Leftover from an earlier run; clear it so the miss path is exercised.
		rdb.Del(ctx, cacheKey(req))
	}
	if _, ok := cache.Get(ctx, req); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	it := &Itinerary{
		Overview: "Three days of temples.",
		DayPlans: []DayPlan{{Day: 1, Title: "Arrival"}, {Day: 2, Title: "Temples"}, {Day: 3, Title: "Departure"}},
	}
	cache.Put(ctx, req, it)

	got, ok := cache.Get(ctx, req)
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if got.Overview != it.Overview || len(got.DayPlans) != 3 {
		t.Errorf("cached itinerary mismatch: %+v", got)
	}

	// A different request misses.
	other := req
	other.Days = 4
	if _, ok := cache.Get(ctx, other); ok {
		t.Error("expected a miss for a different request")
	}
}
