package cache

import (
	"context"
	"testing"
	"time"

	"github.com/voyago/travelsearch/internal/models"
)

func testKey(date string) Key {
	return Key{
		OriginID:      "NYC",
		DestinationID: "LAX",
		DepartureDate: date,
		Passengers:    1,
		Mode:          models.ModeFlights,
	}
}

func testOptions() []models.TravelOption {
	return []models.TravelOption{
		{ID: "FL-abc123", Price: 249, Currency: "USD", Stops: 0},
		{ID: "FL-def456", Price: 312, Currency: "USD", Stops: 1},
	}
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	ctx := context.Background()
	key := testKey("2025-06-01")

	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := c.Set(ctx, key, testOptions()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := c.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 2 || got[0].ID != "FL-abc123" || got[1].Price != 312 {
		t.Errorf("unexpected cached options: %+v", got)
	}
}

func TestMemoryCacheKeyDiscrimination(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	ctx := context.Background()

	if err := c.Set(ctx, testKey("2025-06-01"), testOptions()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if _, ok := c.Get(ctx, testKey("2025-06-02")); ok {
		t.Error("different departure date should miss")
	}

	other := testKey("2025-06-01")
	other.Passengers = 2
	if _, ok := c.Get(ctx, other); ok {
		t.Error("different passenger count should miss")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	ctx := context.Background()
	key := testKey("2025-06-01")
	if err := c.Set(ctx, key, testOptions()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	clock = clock.Add(59 * time.Minute)
	if _, ok := c.Get(ctx, key); !ok {
		t.Error("expected hit before TTL")
	}

	clock = clock.Add(2 * time.Minute)
	if _, ok := c.Get(ctx, key); ok {
		t.Error("expected miss after TTL")
	}

	// The expired entry is gone, not just masked.
	c.mu.RLock()
	remaining := len(c.entries)
	c.mu.RUnlock()
	if remaining != 0 {
		t.Errorf("expected expired entry to be deleted, %d remain", remaining)
	}
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()
	key := testKey("2025-06-01")

	if err := c.Set(ctx, key, testOptions()); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := c.Get(ctx, key); ok {
		t.Error("no-op cache must never hit")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestGenerateKeyDeterministic(t *testing.T) {
	a := generateKey(testKey("2025-06-01"))
	b := generateKey(testKey("2025-06-01"))
	if a != b {
		t.Error("identical keys must hash identically")
	}
	if a == generateKey(testKey("2025-06-02")) {
		t.Error("distinct keys must hash distinctly")
	}
}
