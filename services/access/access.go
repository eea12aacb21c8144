// File: azulpool/services/access/access.go
package access

import (
	"context"
	"fmt"

	quotesRepo "azulpool/database/repository/quotes"
	"azulpool/services/notification"

	"go.uber.org/zap"
)

// Service implements the customer right-to-access flow: a customer proves
// control of an email address with a short-lived verification code, then
// receives every quote stored under that address. Admins bypass the code at
// the handler layer.
type Service struct {
	Codes  CodeStore
	Mailer notification.CodeSender
	Repo   quotesRepo.QuoteRepository
}

// RequestCode issues a fresh verification code for email and sends it.
// Returns whether the email was delivered; an undelivered code stays valid,
// and is logged so development environments can complete the flow.
func (s *Service) RequestCode(ctx context.Context, email string) (bool, error) {
	code, err := NewAccessCode()
	if err != nil {
		return false, err
	}
	if err := s.Codes.Issue(ctx, email, code); err != nil {
		return false, fmt.Errorf("failed to issue verification code: %w", err)
	}

	delivered := s.Mailer.SendVerificationCode(ctx, email, code)
	if !delivered {
		zap.L().Warn("verification code email not delivered", zap.String("email", email))
	}
	return delivered, nil
}

// VerifyCode redeems a verification code. Codes are one-time use.
func (s *Service) VerifyCode(ctx context.Context, email, code string) (bool, error) {
	return s.Codes.Verify(ctx, email, code)
}

// Retrieve returns every stored quote matching the email address.
func (s *Service) Retrieve(ctx context.Context, email string) ([]quotesRepo.QuoteMatch, error) {
	return s.Repo.FindByEmail(ctx, email)
}
