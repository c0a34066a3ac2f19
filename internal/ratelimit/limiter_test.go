package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestGetLimiterReusesInstance(t *testing.T) {
	u := NewUpstreamLimiterWithDefaults()

	a := u.GetLimiter("amadeus")
	b := u.GetLimiter("amadeus")
	if a != b {
		t.Error("expected the same limiter for repeated lookups")
	}
	if a == u.GetLimiter("geocode") {
		t.Error("expected distinct limiters per upstream")
	}
}

func TestSetUpstreamLimit(t *testing.T) {
	u := NewUpstreamLimiterWithDefaults()
	u.SetUpstreamLimit("geocode", 2, 4)

	limiter := u.GetLimiter("geocode")
	if limiter.Limit() != 2 {
		t.Errorf("expected 2 rps, got %v", limiter.Limit())
	}
	if limiter.Burst() != 4 {
		t.Errorf("expected burst 4, got %d", limiter.Burst())
	}
}

func TestWaitWithinBurst(t *testing.T) {
	u := NewUpstreamLimiter(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 5})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		if err := u.Wait(ctx, "test"); err != nil {
			t.Fatalf("Wait %d: %v", i, err)
		}
	}
}

func TestWaitHonorsCancellation(t *testing.T) {
	u := NewUpstreamLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1})

	if err := u.Wait(context.Background(), "slow"); err != nil {
		t.Fatalf("first Wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := u.Wait(ctx, "slow"); err == nil {
		t.Error("expected error once the context deadline passes")
	}
}
