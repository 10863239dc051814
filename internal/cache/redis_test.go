package cache

import (
	"context"
	"testing"
	"time"
)

// Without a Redis connection every cache call degrades to a no-op, so the
// services that read through the cache always fall back to the database.
func TestNilClientDegradesGracefully(t *testing.T) {
	if client != nil {
		t.Skip("redis client unexpectedly initialized")
	}

	ctx := context.Background()

	if _, ok := GetCached(ctx, LedgerBreakdownKey); ok {
		t.Error("GetCached returned a hit with no client")
	}
	SetCached(ctx, LedgerBreakdownKey, []byte(`[]`), time.Minute)
	if _, ok := GetCached(ctx, LedgerBreakdownKey); ok {
		t.Error("SetCached stored data with no client")
	}

	if _, ok := GetCachedAuth(ctx, "a@b.com", "pw"); ok {
		t.Error("GetCachedAuth returned a hit with no client")
	}

	InvalidateFeeCaches(ctx)
	InvalidatePayrollCaches(ctx)
	InvalidateExpenseCaches(ctx)

	if IsHealthy() {
		t.Error("IsHealthy reported true with no client")
	}
}
