package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

func testProfile(device models.DeviceType) models.PsychologyProfile {
	return models.PsychologyProfile{
		RiskTolerance:         models.RiskHigh,
		PriceSensitivity:      models.PriceSensitivityMedium,
		ConveniencePreference: models.PreferSpeed,
		DeviceType:            device,
		PreferredMethods:      []models.PaymentMethodID{},
		FailedAttempts:        []models.FailedAttempt{},
	}
}

func TestCacheKeyDeterministic(t *testing.T) {
	cache := NewRecommendationCache(nil, time.Minute, zap.NewNop())
	t.Cleanup(cache.Close)

	k1 := cache.Key(testProfile(models.DeviceMobile), 850)
	k2 := cache.Key(testProfile(models.DeviceMobile), 850)
	if k1 != k2 {
		t.Errorf("same inputs produced different keys: %s vs %s", k1, k2)
	}

	if k3 := cache.Key(testProfile(models.DeviceDesktop), 850); k3 == k1 {
		t.Error("different profiles produced the same key")
	}
	if k4 := cache.Key(testProfile(models.DeviceMobile), 900); k4 == k1 {
		t.Error("different amounts produced the same key")
	}
}

func TestCacheMemoryRoundTrip(t *testing.T) {
	cache := NewRecommendationCache(nil, time.Minute, zap.NewNop())
	t.Cleanup(cache.Close)
	ctx := context.Background()

	key := cache.Key(testProfile(models.DeviceMobile), 850)
	if _, ok := cache.Get(ctx, key); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	recs := []models.Recommendation{
		{Method: models.MethodApplePay, Confidence: 100},
		{Method: models.MethodCard, Confidence: 74},
	}
	cache.Set(ctx, key, recs)

	got, ok := cache.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(got) != 2 || got[0].Method != models.MethodApplePay {
		t.Errorf("Get() = %v, want cached recommendations", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewRecommendationCache(nil, time.Nanosecond, zap.NewNop())
	t.Cleanup(cache.Close)
	ctx := context.Background()

	key := cache.Key(testProfile(models.DeviceMobile), 850)
	cache.Set(ctx, key, []models.Recommendation{{Method: models.MethodCard}})

	time.Sleep(time.Millisecond)
	if _, ok := cache.Get(ctx, key); ok {
		t.Error("expired entry still served")
	}
}

func TestCacheCloseStopsCleanup(t *testing.T) {
	cache := NewRecommendationCache(nil, time.Minute, zap.NewNop())

	cache.Close()
	select {
	case <-cache.memCache.done:
	default:
		t.Fatal("Close() did not signal the cleanup goroutine")
	}

	// A second Close must not panic.
	cache.Close()
}
