package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/thansohoc/numerology-api/internal/domain"
)

func setupCache(t *testing.T) (*ProfileCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewProfileCache(rdb, 30*time.Minute), mr
}

func testProfile(userID string) *domain.Profile {
	return &domain.Profile{
		ID:     "p-1",
		UserID: userID,
		NumberSet: domain.NumberSet{
			LifePath: 1, Destiny: 2, SoulUrge: 6, Personality: 5,
			PersonalYear: 5, PersonalMonth: 1,
		},
		Interpretations: map[string]string{"lifePathNumber_1": "Lãnh đạo, độc lập, sáng tạo."},
		CalculatedAt:    time.Now().UTC().Truncate(time.Second),
		UpdatedAt:       time.Now().UTC().Truncate(time.Second),
	}
}

func TestProfileCacheRoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "u-1"); ok {
		t.Fatal("empty cache reported a hit")
	}

	want := testProfile("u-1")
	c.Set(ctx, want)

	got, ok := c.Get(ctx, "u-1")
	if !ok {
		t.Fatal("cache miss after Set")
	}
	if got.Destiny != want.Destiny || got.UserID != want.UserID {
		t.Errorf("got %+v, want %+v", got.NumberSet, want.NumberSet)
	}
	if got.Interpretations["lifePathNumber_1"] == "" {
		t.Error("interpretations lost in round trip")
	}
}

func TestProfileCacheInvalidate(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	c.Set(ctx, testProfile("u-2"))
	c.Invalidate(ctx, "u-2")

	if _, ok := c.Get(ctx, "u-2"); ok {
		t.Error("hit after Invalidate")
	}
}

func TestProfileCacheTTL(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	c.Set(ctx, testProfile("u-3"))
	mr.FastForward(31 * time.Minute)

	if _, ok := c.Get(ctx, "u-3"); ok {
		t.Error("hit after TTL expiry")
	}
}

func TestProfileCacheCorruptEntry(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	mr.Set("numerology:profile:u-4", "{not json")
	if _, ok := c.Get(ctx, "u-4"); ok {
		t.Error("corrupt entry reported as hit")
	}
	// The corrupt value is dropped so a later Set starts clean.
	if mr.Exists("numerology:profile:u-4") {
		t.Error("corrupt entry not deleted")
	}
}
