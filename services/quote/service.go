// File: azulpool/services/quote/service.go
package quote

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"azulpool/database/repository/objectstore"
	"azulpool/models"
	"azulpool/services/pricing"

	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// resolveConfig fetches the current rate table, degrading to the compiled-in
// defaults when storage is unreachable. A customer-facing estimate should not
// fail because the config store is down; the fallback is logged for ops.
func (s *DefaultQuoteService) resolveConfig(ctx context.Context) models.PricingConfig {
	cfg, err := s.Config.Resolve(ctx)
	if err != nil {
		zap.L().Warn("pricing config unavailable, using defaults", zap.Error(err))
		defaults := pricing.DefaultConfig()
		return defaults
	}
	return *cfg
}

// Price computes a breakdown for the given request without persisting it.
func (s *DefaultQuoteService) Price(ctx context.Context, req models.QuoteRequest) (*models.QuotePricing, error) {
	if req.ServiceCategory != "" && !req.ServiceCategory.IsValid() {
		return nil, fmt.Errorf("%w: unknown service category %q", ErrInvalidQuote, req.ServiceCategory)
	}
	breakdown := pricing.Calculate(req, s.resolveConfig(ctx))
	return &breakdown, nil
}

// Submit validates the record, attaches server-computed pricing using the
// configuration current at this moment, stamps the lifecycle metadata, and
// persists it. Returns the storage key.
func (s *DefaultQuoteService) Submit(ctx context.Context, record models.QuoteRecord) (string, error) {
	if err := validateRecord(&record); err != nil {
		return "", err
	}

	breakdown := pricing.Calculate(record.QuoteRequest, s.resolveConfig(ctx))
	now := time.Now().UTC()
	record.Pricing = &breakdown
	record.Status = models.StatusPending
	record.CreatedAt = &now

	key, err := s.Repo.Create(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to store quote: %w", err)
	}
	zap.L().Info("quote submitted",
		zap.String("key", key),
		zap.String("category", string(record.ServiceCategory)),
		zap.Float64("monthlyTotal", breakdown.MonthlyTotal),
	)
	return key, nil
}

func (s *DefaultQuoteService) GetByKey(ctx context.Context, key string) (*models.QuoteRecord, error) {
	return s.Repo.GetByKey(ctx, key)
}

func (s *DefaultQuoteService) List(ctx context.Context) ([]objectstore.ObjectInfo, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultQuoteService) DeleteByKey(ctx context.Context, key string) error {
	return s.Repo.DeleteByKey(ctx, key)
}

func validateRecord(record *models.QuoteRecord) error {
	if record.Segment != "" && record.Segment != "residential" && record.Segment != "commercial" {
		return fmt.Errorf("%w: unknown segment %q", ErrInvalidQuote, record.Segment)
	}
	if record.ServiceCategory != "" && !record.ServiceCategory.IsValid() {
		return fmt.Errorf("%w: unknown service category %q", ErrInvalidQuote, record.ServiceCategory)
	}
	if record.Email != "" && !emailPattern.MatchString(record.Email) {
		return fmt.Errorf("%w: malformed email", ErrInvalidQuote)
	}
	if record.Commercial != nil && record.Commercial.Email != "" && !emailPattern.MatchString(record.Commercial.Email) {
		return fmt.Errorf("%w: malformed commercial email", ErrInvalidQuote)
	}
	return nil
}
