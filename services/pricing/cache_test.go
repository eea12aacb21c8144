package pricing

import (
	"context"
	"errors"
	"testing"

	"azulpool/database/repository/objectstore"
	"azulpool/models"
)

func newTestConfigService() (*DefaultConfigService, *objectstore.MemoryObjectStore) {
	mem := objectstore.NewMemoryObjectStore()
	store := NewConfigStore(mem)
	return &DefaultConfigService{Store: store, Cache: NewConfigCache(store)}, mem
}

func TestCacheResolvesDefaultsWhenUnsaved(t *testing.T) {
	svc, _ := newTestConfigService()

	cfg, err := svc.Cache.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.BasePrices[models.CategoryRegular] != 210 {
		t.Errorf("regular base = %.2f, want default 210", cfg.BasePrices[models.CategoryRegular])
	}
}

func TestCacheSaveThenInvalidateIsVisible(t *testing.T) {
	svc, _ := newTestConfigService()
	ctx := context.Background()

	// Prime the cache with the defaults.
	if _, err := svc.Cache.Resolve(ctx); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// SaveConfig invalidates, so the next Resolve sees the new rate.
	_, err := svc.SaveConfig(ctx, &models.PricingConfigPatch{
		BasePrices: map[models.ServiceCategory]float64{models.CategoryRegular: 260},
	})
	if err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	cfg, err := svc.Cache.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve after save: %v", err)
	}
	if cfg.BasePrices[models.CategoryRegular] != 260 {
		t.Errorf("regular base = %.2f, want saved 260", cfg.BasePrices[models.CategoryRegular])
	}
}

func TestCacheServesCachedValueAcrossStorageOutage(t *testing.T) {
	svc, mem := newTestConfigService()
	ctx := context.Background()

	if _, err := svc.Cache.Resolve(ctx); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// A cache hit never touches storage.
	mem.FailGets = errors.New("storage down")
	cfg, err := svc.Cache.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve during outage returned %v, want cached value", err)
	}
	if cfg == nil {
		t.Fatal("Resolve during outage returned nil config")
	}
}

func TestCacheLoadFailurePropagatesAndCachesNothing(t *testing.T) {
	svc, mem := newTestConfigService()
	ctx := context.Background()

	boom := errors.New("storage down")
	mem.FailGets = boom

	if _, err := svc.Cache.Resolve(ctx); !errors.Is(err, boom) {
		t.Fatalf("Resolve during outage returned %v, want the storage error", err)
	}

	// Nothing was cached, so recovery resolves fresh from storage.
	mem.FailGets = nil
	cfg, err := svc.Cache.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve after recovery: %v", err)
	}
	if cfg.BasePrices[models.CategoryGreen] != 350 {
		t.Errorf("green base = %.2f, want default 350", cfg.BasePrices[models.CategoryGreen])
	}
}

func TestGetConfigBypassesCache(t *testing.T) {
	svc, _ := newTestConfigService()
	ctx := context.Background()

	if _, err := svc.Cache.Resolve(ctx); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// Write directly through the store, without invalidating the cache.
	cfg := DefaultConfig()
	cfg.BasePrices[models.CategoryRegular] = 300
	if err := svc.Store.Save(ctx, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	view, err := svc.GetConfig(ctx)
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if view.Config.BasePrices[models.CategoryRegular] != 300 {
		t.Errorf("admin view regular base = %.2f, want persisted 300",
			view.Config.BasePrices[models.CategoryRegular])
	}
	if view.Defaults.BasePrices[models.CategoryRegular] != 210 {
		t.Errorf("defaults in view = %.2f, want compiled-in 210",
			view.Defaults.BasePrices[models.CategoryRegular])
	}

	// The engine-facing cache still serves its primed value until invalidated.
	cached, err := svc.Cache.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cached.BasePrices[models.CategoryRegular] != 210 {
		t.Errorf("cached regular base = %.2f, want stale 210", cached.BasePrices[models.CategoryRegular])
	}
}
