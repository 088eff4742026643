package adapter

import "context"

// SendEmailInput describes an outgoing email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the provider's response.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
