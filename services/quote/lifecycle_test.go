package quote

import (
	"context"
	"errors"
	"reflect"
	"testing"

	quotesRepo "azulpool/database/repository/quotes"
	"azulpool/models"
	"azulpool/services/audit"
)

func adminPricing() *models.QuotePricing {
	weekly, biWeekly, monthly := 500.0, 325.0, 200.0
	return &models.QuotePricing{
		BasePrice:    500,
		Subtotal:     500,
		MonthlyTotal: 500,
		FrequencyVariants: models.FrequencyVariants{
			Weekly:   &weekly,
			BiWeekly: &biWeekly,
			Monthly:  &monthly,
		},
		Breakdown: []string{"Custom estimate after site visit: $500.00/month"},
	}
}

func TestUpdatePricingOverwritesVerbatim(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()

	key, err := f.service.Submit(ctx, models.QuoteRecord{
		QuoteRequest: models.QuoteRequest{ServiceCategory: models.CategoryRegular},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	custom := adminPricing()
	updated, err := f.service.UpdatePricing(ctx, key, custom, "")
	if err != nil {
		t.Fatalf("UpdatePricing: %v", err)
	}
	if updated.Status != models.StatusPending {
		t.Errorf("status = %q, want existing pending preserved", updated.Status)
	}
	if updated.UpdatedAt == nil {
		t.Error("updatedAt not stamped")
	}

	stored, err := f.service.GetByKey(ctx, key)
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	// Admin-entered pricing is stored exactly as given, no recomputation.
	if !reflect.DeepEqual(stored.Pricing, custom) {
		t.Errorf("stored pricing diverged from admin input:\ngot  %+v\nwant %+v", stored.Pricing, custom)
	}
}

func TestUpdatePricingStatusHandling(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()

	key, err := f.service.Submit(ctx, models.QuoteRecord{})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Explicit status wins.
	record, err := f.service.UpdatePricing(ctx, key, nil, models.StatusUpdated)
	if err != nil {
		t.Fatalf("UpdatePricing: %v", err)
	}
	if record.Status != models.StatusUpdated {
		t.Errorf("status = %q, want updated", record.Status)
	}

	// Nil pricing leaves the existing pricing in place.
	if record.Pricing == nil {
		t.Error("nil replacement pricing wiped the stored pricing")
	}
}

func TestUpdatePricingMissingQuote(t *testing.T) {
	f := newTestFixture()

	_, err := f.service.UpdatePricing(context.Background(), "quotes/quote-missing.json", adminPricing(), "")
	if !errors.Is(err, quotesRepo.ErrQuoteNotFound) {
		t.Fatalf("UpdatePricing returned %v, want ErrQuoteNotFound", err)
	}
}

func TestAcceptMarksAndNotifies(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()

	key, err := f.service.Submit(ctx, models.QuoteRecord{
		FirstName: "Dana",
		Email:     "dana@example.com",
		QuoteRequest: models.QuoteRequest{
			ServiceCategory: models.CategoryRegular,
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	record, err := f.service.Accept(ctx, key, nil)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if record.Status != models.StatusAccepted {
		t.Errorf("status = %q, want accepted", record.Status)
	}
	if record.AcceptedAt == nil || record.UpdatedAt == nil {
		t.Error("acceptance timestamps not stamped")
	}

	if len(f.mailer.sent) != 1 {
		t.Fatalf("mailer called %d times, want 1", len(f.mailer.sent))
	}
	msg := f.mailer.sent[0]
	if len(msg.To) != 1 || msg.To[0] != "dana@example.com" {
		t.Errorf("email to = %v, want the customer address", msg.To)
	}
	if msg.CustomerName != "Dana" {
		t.Errorf("customer name = %q, want Dana", msg.CustomerName)
	}
	if len(msg.BreakdownLines) == 0 {
		t.Error("email missing the price breakdown")
	}
	if msg.Summary == nil || msg.Summary.MonthlyTotal != 210 {
		t.Errorf("email summary = %+v, want monthly total 210", msg.Summary)
	}

	// Acceptance is recorded in the audit trail.
	events, err := audit.NewRecorder(f.objects).List(ctx)
	if err != nil {
		t.Fatalf("audit List: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("audit trail has %d events, want 1", len(events))
	}
}

func TestAcceptWithReplacementPricing(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()

	key, err := f.service.Submit(ctx, models.QuoteRecord{Email: "dana@example.com"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	custom := adminPricing()
	record, err := f.service.Accept(ctx, key, custom)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if !reflect.DeepEqual(record.Pricing, custom) {
		t.Errorf("accepted pricing diverged from admin input")
	}
	if f.mailer.sent[0].Summary.MonthlyTotal != 500 {
		t.Errorf("email summary total = %.2f, want the replacement 500",
			f.mailer.sent[0].Summary.MonthlyTotal)
	}
}

func TestAcceptRequiresCustomerEmail(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()

	key, err := f.service.Submit(ctx, models.QuoteRecord{})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := f.service.Accept(ctx, key, nil); !errors.Is(err, ErrNoCustomerEmail) {
		t.Fatalf("Accept returned %v, want ErrNoCustomerEmail", err)
	}

	// The failed accept must not have touched the record.
	stored, err := f.service.GetByKey(ctx, key)
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if stored.Status != models.StatusPending {
		t.Errorf("status = %q, want pending after refused accept", stored.Status)
	}
}

func TestAcceptFallsBackToCommercialEmail(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()

	key, err := f.service.Submit(ctx, models.QuoteRecord{
		Segment:    "commercial",
		Commercial: &models.CommercialContact{Email: "ops@hotelchain.example.com"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := f.service.Accept(ctx, key, nil); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if f.mailer.sent[0].To[0] != "ops@hotelchain.example.com" {
		t.Errorf("email to = %v, want the commercial contact", f.mailer.sent[0].To)
	}
}

func TestAcceptSurvivesMailerFailure(t *testing.T) {
	f := newTestFixture()
	f.mailer.ok = false
	ctx := context.Background()

	key, err := f.service.Submit(ctx, models.QuoteRecord{Email: "dana@example.com"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	record, err := f.service.Accept(ctx, key, nil)
	if err != nil {
		t.Fatalf("Accept with failing mailer: %v", err)
	}
	if record.Status != models.StatusAccepted {
		t.Errorf("status = %q, want accepted despite delivery failure", record.Status)
	}

	stored, err := f.service.GetByKey(ctx, key)
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if stored.Status != models.StatusAccepted {
		t.Errorf("persisted status = %q, want accepted", stored.Status)
	}
}
