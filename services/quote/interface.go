// File: azulpool/services/quote/interface.go
package quote

import (
	"context"

	"azulpool/database/repository/objectstore"
	quotesRepo "azulpool/database/repository/quotes"
	"azulpool/models"
	"azulpool/services/audit"
	"azulpool/services/notification"
	"azulpool/services/pricing"
)

// QuoteService covers the public wizard surface (price preview, submission)
// and the admin lifecycle (list, get, update, accept, delete).
type QuoteService interface {
	// Price computes a breakdown without persisting anything.
	Price(ctx context.Context, req models.QuoteRequest) (*models.QuotePricing, error)

	// Submit validates and persists a new quote with server-computed pricing.
	Submit(ctx context.Context, record models.QuoteRecord) (string, error)

	GetByKey(ctx context.Context, key string) (*models.QuoteRecord, error)
	List(ctx context.Context) ([]objectstore.ObjectInfo, error)
	DeleteByKey(ctx context.Context, key string) error

	// UpdatePricing overwrites the stored pricing verbatim — no recomputation
	// and no validation. Admin-entered numbers are allowed to diverge from
	// what the engine would compute.
	UpdatePricing(ctx context.Context, key string, pricing *models.QuotePricing, status models.QuoteStatus) (*models.QuoteRecord, error)

	// Accept marks the quote accepted and emails the customer the breakdown.
	Accept(ctx context.Context, key string, pricing *models.QuotePricing) (*models.QuoteRecord, error)
}

// DefaultQuoteService is the production implementation.
type DefaultQuoteService struct {
	Repo   quotesRepo.QuoteRepository
	Config *pricing.ConfigCache
	Mailer notification.Mailer
	Audit  *audit.Recorder
}
