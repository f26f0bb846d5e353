package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"invitepages/internal/domain"
)

// recipientRegexp is the local address check: non-whitespace local part,
// non-whitespace domain with at least one dot. Failures are rejected
// without a network call.
var recipientRegexp = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendWelcomeMessage sends the welcome email for a freshly published
// invitation page using the "welcome" template.
func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome message data is nil")
	}
	to := strings.TrimSpace(data.Email)
	if !recipientRegexp.MatchString(to) {
		return domain.NewValidationError("email", "is not a valid address")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}
	if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	log.Printf("[EMAIL] Welcome email sent to %s", to)
	return nil
}
