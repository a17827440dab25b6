package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dealbridge/backend/internal/domain"
)

func newTestCache(t *testing.T) *MemoryCache {
	t.Helper()
	c := NewMemoryCache()
	t.Cleanup(c.Close)
	return c
}

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is a cache miss", func(t *testing.T) {
		c := newTestCache(t)
		_, err := c.Get(ctx, "absent")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("set then get round-trips through JSON", func(t *testing.T) {
		c := newTestCache(t)

		type payload struct {
			Name  string `json:"name"`
			Score int    `json:"score"`
		}
		if err := c.Set(ctx, "k", payload{Name: "acme", Score: 42}, time.Minute); err != nil {
			t.Fatalf("Set: %v", err)
		}

		got, err := c.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}

		// Values come back in the generic decoded shape, the same way an
		// external cache backend would return them.
		m, ok := got.(map[string]interface{})
		if !ok {
			t.Fatalf("value type = %T, want map[string]interface{}", got)
		}
		if m["name"] != "acme" {
			t.Errorf("name = %v, want acme", m["name"])
		}
		if m["score"] != float64(42) {
			t.Errorf("score = %v, want 42", m["score"])
		}
	})

	t.Run("set overwrites an existing key", func(t *testing.T) {
		c := newTestCache(t)
		if err := c.Set(ctx, "k", "first", time.Minute); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := c.Set(ctx, "k", "second", time.Minute); err != nil {
			t.Fatalf("Set: %v", err)
		}

		got, err := c.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != "second" {
			t.Errorf("value = %v, want second", got)
		}
	})

	t.Run("unmarshalable value is rejected", func(t *testing.T) {
		c := newTestCache(t)
		if err := c.Set(ctx, "k", make(chan int), time.Minute); err == nil {
			t.Error("expected marshal error for a channel value")
		}
	})
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()

	t.Run("expired key reads as a miss", func(t *testing.T) {
		c := newTestCache(t)
		if err := c.Set(ctx, "k", "v", 10*time.Millisecond); err != nil {
			t.Fatalf("Set: %v", err)
		}

		time.Sleep(30 * time.Millisecond)

		if _, err := c.Get(ctx, "k"); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss after expiry", err)
		}
		if exists, _ := c.Exists(ctx, "k"); exists {
			t.Error("Exists = true, want false after expiry")
		}
	})

	t.Run("unexpired key survives", func(t *testing.T) {
		c := newTestCache(t)
		if err := c.Set(ctx, "k", "v", time.Hour); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if exists, _ := c.Exists(ctx, "k"); !exists {
			t.Error("Exists = false, want true")
		}
	})

	t.Run("sweep removes expired entries", func(t *testing.T) {
		c := &MemoryCache{
			entries: make(map[string]entry),
			done:    make(chan struct{}),
		}
		t.Cleanup(c.Close)
		go c.sweep(5 * time.Millisecond)

		if err := c.Set(ctx, "stale", "v", time.Millisecond); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := c.Set(ctx, "fresh", "v", time.Hour); err != nil {
			t.Fatalf("Set: %v", err)
		}

		deadline := time.Now().Add(time.Second)
		for c.Len() != 1 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}

		if got := c.Len(); got != 1 {
			t.Errorf("Len = %d, want 1 (stale entry swept)", got)
		}
	})
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, "k"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("error = %v, want ErrCacheMiss after delete", err)
	}

	// Deleting a key that was never set is fine.
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}
