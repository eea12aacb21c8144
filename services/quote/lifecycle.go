// File: azulpool/services/quote/lifecycle.go
package quote

import (
	"context"
	"fmt"
	"time"

	"azulpool/models"
	"azulpool/services/audit"
	"azulpool/services/notification"

	"go.uber.org/zap"
)

// UpdatePricing loads the quote at key, overwrites its pricing verbatim when
// a replacement is provided, applies the requested status (defaulting to
// "updated" for a quote that never had one), stamps updatedAt, and persists.
func (s *DefaultQuoteService) UpdatePricing(ctx context.Context, key string, pricing *models.QuotePricing, status models.QuoteStatus) (*models.QuoteRecord, error) {
	record, err := s.Repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if pricing != nil {
		record.Pricing = pricing
	}
	switch {
	case status != "":
		record.Status = status
	case record.Status == "":
		record.Status = models.StatusUpdated
	}
	now := time.Now().UTC()
	record.UpdatedAt = &now

	if err := s.Repo.Update(ctx, key, *record); err != nil {
		return nil, fmt.Errorf("failed to update quote %s: %w", key, err)
	}
	return record, nil
}

// Accept overwrites the pricing when provided, marks the quote accepted, and
// notifies the customer. The email and audit writes are best-effort: a
// delivery failure is logged, never surfaced, and never rolls back the
// accept.
func (s *DefaultQuoteService) Accept(ctx context.Context, key string, pricing *models.QuotePricing) (*models.QuoteRecord, error) {
	record, err := s.Repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	customerEmail := record.CustomerEmail()
	if customerEmail == "" {
		return nil, ErrNoCustomerEmail
	}

	if pricing != nil {
		record.Pricing = pricing
	}
	now := time.Now().UTC()
	record.Status = models.StatusAccepted
	record.UpdatedAt = &now
	record.AcceptedAt = &now

	if err := s.Repo.Update(ctx, key, *record); err != nil {
		return nil, fmt.Errorf("failed to update quote %s: %w", key, err)
	}

	msg := notification.QuoteEmail{
		To:           []string{customerEmail},
		Subject:      "Your Azul Pool Services Quote",
		CustomerName: record.FirstName,
	}
	if record.Pricing != nil {
		msg.BreakdownLines = record.Pricing.Breakdown
		msg.Summary = &notification.QuoteSummary{
			Subtotal:     record.Pricing.Subtotal,
			MonthlyTotal: record.Pricing.MonthlyTotal,
			IsOneTime:    record.Pricing.IsOneTime,
		}
	}
	if s.Mailer != nil && !s.Mailer.SendQuote(ctx, msg) {
		zap.L().Warn("quote acceptance email not delivered", zap.String("key", key))
	}

	if s.Audit != nil {
		if err := s.Audit.Record(ctx, audit.Event{
			Type:    audit.EventAccess,
			Email:   customerEmail,
			Key:     key,
			Success: true,
		}); err != nil {
			zap.L().Error("failed to log accept audit event", zap.Error(err))
		}
	}

	return record, nil
}
