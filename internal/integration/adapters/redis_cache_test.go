package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ledgerline/backend/internal/domain/entity"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *RedisSummaryCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &RedisSummaryCache{client: client}
}

func TestRedisSummaryCacheRoundTrip(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()

	summary := &entity.DashboardSummary{
		Balance: &entity.Balance{
			Available: []entity.BalanceAmount{{Amount: 125000, Currency: "usd"}},
		},
		Charges: []entity.Charge{
			{ID: "ch_1", Amount: 5000, Currency: "usd", Status: "succeeded", Created: 1714000000},
		},
	}

	if err := cache.Set(ctx, "auth0|owner", summary, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(ctx, "auth0|owner")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached summary")
	}
	if got.Balance.Available[0].Amount != 125000 {
		t.Errorf("unexpected balance %d", got.Balance.Available[0].Amount)
	}
	if len(got.Charges) != 1 || got.Charges[0].ID != "ch_1" {
		t.Errorf("unexpected charges %+v", got.Charges)
	}
}

func TestRedisSummaryCacheMissIsNil(t *testing.T) {
	_, cache := newTestCache(t)

	got, err := cache.Get(context.Background(), "auth0|nobody")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil on miss")
	}
}

func TestRedisSummaryCacheExpires(t *testing.T) {
	mr, cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "auth0|owner", &entity.DashboardSummary{}, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "auth0|owner")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected entry to expire")
	}
}

func TestRedisSummaryCacheKeysPerOwner(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "auth0|a", &entity.DashboardSummary{Charges: []entity.Charge{{ID: "ch_a"}}}, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(ctx, "auth0|b")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected miss for other owner")
	}
}
