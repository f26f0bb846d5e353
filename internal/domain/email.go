package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WelcomeMessageEmailData holds data for the welcome email sent to a new
// invitation owner. Slug is the public address of their page.
type WelcomeMessageEmailData struct {
	Email    string
	Name     string
	Slug     string
	Language string // optional, for future locale templates
}

// EmailService defines the contract for sending domain-level emails.
// Recipient addresses are validated locally; malformed ones are rejected
// with *ValidationError before any network call.
type EmailService interface {
	SendWelcomeMessage(ctx context.Context, data *WelcomeMessageEmailData) error
}
