package notification

import (
	"context"
	"strings"
	"testing"
)

func TestSendQuoteWithoutAPIKey(t *testing.T) {
	mailer := NewResendMailer("", "noreply@example.com", "Azul Pool Services", "")

	ok := mailer.SendQuote(context.Background(), QuoteEmail{
		To:      []string{"dana@example.com"},
		Subject: "Your Quote",
	})
	if ok {
		t.Error("SendQuote without an API key reported success")
	}
}

func TestRenderBodyRecurring(t *testing.T) {
	mailer := NewResendMailer("key", "noreply@example.com", "Azul Pool Services", "")

	body := mailer.renderBody(QuoteEmail{
		CustomerName:   "Dana",
		BreakdownLines: []string{"Base regular service (weekly visits, medium pool): $210.00/month"},
		Summary:        &QuoteSummary{Subtotal: 210, MonthlyTotal: 210},
	})

	for _, want := range []string{
		"Hi Dana,",
		"Here is your quote from Azul Pool Services:",
		"Base regular service (weekly visits, medium pool): $210.00/month",
		"Monthly total: $210.00",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderBodyOneTime(t *testing.T) {
	mailer := NewResendMailer("key", "noreply@example.com", "Azul Pool Services", "")

	body := mailer.renderBody(QuoteEmail{
		BreakdownLines: []string{"Base green job: $350.00"},
		Summary:        &QuoteSummary{Subtotal: 350, MonthlyTotal: 350, IsOneTime: true},
	})

	if !strings.Contains(body, "One-time total: $350.00") {
		t.Errorf("body missing one-time total:\n%s", body)
	}
	if strings.Contains(body, "Monthly total") {
		t.Errorf("one-time quote rendered a monthly total:\n%s", body)
	}
	if strings.Contains(body, "Hi ,") {
		t.Errorf("empty customer name rendered a broken greeting:\n%s", body)
	}
}
