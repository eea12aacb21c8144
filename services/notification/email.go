// File: azulpool/services/notification/email.go
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// QuoteSummary is the roll-up included beneath the breakdown lines.
type QuoteSummary struct {
	Subtotal     float64
	MonthlyTotal float64
	IsOneTime    bool
}

// QuoteEmail is an outbound quote notification.
type QuoteEmail struct {
	To             []string
	Subject        string
	CustomerName   string
	BreakdownLines []string
	Summary        *QuoteSummary
}

// ContactMessage is a submitted contact-form message, relayed to the office.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Mailer sends quote emails. Delivery is best-effort: implementations report
// success as a bool and must never panic or block the calling flow on
// provider trouble.
type Mailer interface {
	SendQuote(ctx context.Context, msg QuoteEmail) bool
}

// ContactSender relays contact-form messages to the office inbox.
type ContactSender interface {
	SendContactForm(ctx context.Context, msg ContactMessage) bool
}

// CodeSender delivers data-access verification codes to customers.
type CodeSender interface {
	SendVerificationCode(ctx context.Context, email, code string) bool
}

// ResendMailer delivers mail through the Resend REST API.
type ResendMailer struct {
	APIKey      string
	From        string
	CompanyName string
	// NotifyEmail, when set, is BCC'd onto every quote email so the office
	// sees what customers receive.
	NotifyEmail string
	Client      *http.Client
}

// NewResendMailer returns a mailer with a sane request timeout.
func NewResendMailer(apiKey, from, companyName, notifyEmail string) *ResendMailer {
	return &ResendMailer{
		APIKey:      apiKey,
		From:        from,
		CompanyName: companyName,
		NotifyEmail: notifyEmail,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Bcc     []string `json:"bcc,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// SendQuote sends the quote email. Without an API key it logs and reports
// failure so development environments keep working.
func (m *ResendMailer) SendQuote(ctx context.Context, msg QuoteEmail) bool {
	if m.APIKey == "" {
		zap.L().Warn("RESEND_API_KEY not set, skipping quote email",
			zap.Strings("to", msg.To))
		return false
	}

	payload := resendRequest{
		From:    m.From,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    m.renderBody(msg),
	}
	if m.NotifyEmail != "" {
		payload.Bcc = []string{m.NotifyEmail}
	}
	return m.deliver(ctx, payload)
}

// SendContactForm relays a contact-form message to the office inbox. The
// customer's address goes in reply-to so the office can answer directly.
func (m *ResendMailer) SendContactForm(ctx context.Context, msg ContactMessage) bool {
	if m.APIKey == "" {
		zap.L().Warn("RESEND_API_KEY not set, skipping contact form email",
			zap.String("from", msg.Email))
		return false
	}
	if m.NotifyEmail == "" {
		zap.L().Warn("NOTIFY_EMAIL not set, contact form message dropped",
			zap.String("from", msg.Email))
		return false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New contact form submission\n\nName: %s\nEmail: %s\n", msg.Name, msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", msg.Phone)
	}
	fmt.Fprintf(&b, "\n%s\n", msg.Message)

	return m.deliver(ctx, resendRequest{
		From:    m.From,
		To:      []string{m.NotifyEmail},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("New contact form submission from %s", msg.Name),
		Text:    b.String(),
	})
}

// SendVerificationCode emails a data-access verification code. Without an API
// key the code is logged so development environments can complete the flow.
func (m *ResendMailer) SendVerificationCode(ctx context.Context, email, code string) bool {
	if m.APIKey == "" {
		zap.L().Warn("RESEND_API_KEY not set, verification code not emailed",
			zap.String("email", email),
			zap.String("code", code))
		return false
	}

	var b strings.Builder
	b.WriteString("Data Access Request\n\n")
	b.WriteString("You requested access to your personal data. Use the verification code below to complete your request.\n\n")
	fmt.Fprintf(&b, "Your verification code is: %s\n\n", code)
	b.WriteString("This code expires in 15 minutes.\n\n")
	b.WriteString("Security Notice: If you did not request access to your data, please ignore this email. The verification code will expire automatically.\n\n")
	b.WriteString("This email was sent in response to a data access request under the Texas Data Privacy and Security Act (TDPSA).\n\n")
	fmt.Fprintf(&b, "%s\nSan Antonio, TX\n", m.CompanyName)

	return m.deliver(ctx, resendRequest{
		From:    m.From,
		To:      []string{email},
		Subject: fmt.Sprintf("Your %s Data Access Verification Code", m.CompanyName),
		Text:    b.String(),
	})
}

func (m *ResendMailer) deliver(ctx context.Context, payload resendRequest) bool {
	logger := zap.L()
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal email", zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		logger.Error("failed to build email request", zap.Error(err))
		return false
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		logger.Error("failed to send email", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("email rejected by provider", zap.Int("status", resp.StatusCode))
		return false
	}
	logger.Info("email sent", zap.Strings("to", payload.To), zap.String("subject", payload.Subject))
	return true
}

func (m *ResendMailer) renderBody(msg QuoteEmail) string {
	var b strings.Builder
	if msg.CustomerName != "" {
		fmt.Fprintf(&b, "Hi %s,\n\n", msg.CustomerName)
	}
	fmt.Fprintf(&b, "Here is your quote from %s:\n\n", m.CompanyName)
	for _, line := range msg.BreakdownLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if msg.Summary != nil {
		b.WriteString("\n")
		if msg.Summary.IsOneTime {
			fmt.Fprintf(&b, "One-time total: $%.2f\n", msg.Summary.MonthlyTotal)
		} else {
			fmt.Fprintf(&b, "Monthly total: $%.2f\n", msg.Summary.MonthlyTotal)
		}
	}
	fmt.Fprintf(&b, "\nReply to this email or give us a call with any questions.\n\n%s\nSan Antonio, TX\n", m.CompanyName)
	return b.String()
}
