package pricing

import (
	"context"
	"encoding/json"
	"time"

	catalogRepo "yourclean/database/repository/catalog"
	contentRepo "yourclean/database/repository/content"
	pricingRepo "yourclean/database/repository/pricing"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	snapshotCacheKey = "pricing:snapshot"
	snapshotCacheTTL = 60 * time.Second
)

// QuoteService prices calculator requests against current configuration.
type QuoteService interface {
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
	ConfigSnapshot(ctx context.Context) (*Snapshot, error)
}

// DefaultQuoteService assembles a configuration snapshot from the store
// (with a short-lived Redis cache: prices change rarely and a slightly stale
// snapshot is an accepted business risk) and runs the pure engine over it.
type DefaultQuoteService struct {
	PricingRepo pricingRepo.PricingRepository
	CatalogRepo catalogRepo.CatalogRepository
	ContentRepo contentRepo.ContentRepository
	Cache       *redis.Client
	Logger      *zap.Logger
}

// Quote computes a full price quote for the request.
func (s *DefaultQuoteService) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	snap, err := s.ConfigSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Compute(*snap, req)
}

// ConfigSnapshot returns the current pricing configuration, served from
// cache when fresh.
func (s *DefaultQuoteService) ConfigSnapshot(ctx context.Context) (*Snapshot, error) {
	if snap := s.cachedSnapshot(ctx); snap != nil {
		return snap, nil
	}

	bands, err := s.PricingRepo.ListActiveBands(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := s.PricingRepo.GetRates(ctx)
	if err != nil {
		return nil, err
	}
	extras, err := s.CatalogRepo.ListExtras(ctx, true)
	if err != nil {
		return nil, err
	}
	dryItems, err := s.CatalogRepo.ListDryItems(ctx, true)
	if err != nil {
		return nil, err
	}
	promo, err := s.ContentRepo.GetActivePromo(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Bands:    bands,
		Rates:    *rates,
		Extras:   extras,
		DryItems: dryItems,
		Promo:    promo,
	}
	s.storeSnapshot(ctx, snap)
	return snap, nil
}

func (s *DefaultQuoteService) cachedSnapshot(ctx context.Context) *Snapshot {
	if s.Cache == nil {
		return nil
	}
	raw, err := s.Cache.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.Logger.Warn("pricing: dropping unreadable snapshot cache", zap.Error(err))
		s.Cache.Del(ctx, snapshotCacheKey)
		return nil
	}
	return &snap
}

func (s *DefaultQuoteService) storeSnapshot(ctx context.Context, snap *Snapshot) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		s.Logger.Warn("pricing: failed to marshal snapshot for cache", zap.Error(err))
		return
	}
	if err := s.Cache.Set(ctx, snapshotCacheKey, raw, snapshotCacheTTL).Err(); err != nil {
		s.Logger.Warn("pricing: failed to cache snapshot", zap.Error(err))
	}
}

// InvalidateSnapshot drops the cached configuration after an admin edit.
func (s *DefaultQuoteService) InvalidateSnapshot(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, snapshotCacheKey).Err(); err != nil {
		s.Logger.Warn("pricing: failed to invalidate snapshot cache", zap.Error(err))
	}
}
