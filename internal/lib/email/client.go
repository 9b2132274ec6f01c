// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders
// email bodies from HTML templates embedded in the binary.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/deppfellow/swimmeet/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

const (
	senderName    = "Swimmeet"
	senderAddress = "onboarding@resend.dev"
)

// Client wraps the Resend client and a logger.
type Client struct {
	client *resend.Client
	logger *zerolog.Logger
}

// NewClient creates an email Client with the API key from config.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(cfg.Integration.ResendAPIKey),
		logger: logger,
	}
}

// Render executes the named template with data.
func Render(templateName Template, data map[string]string) (string, error) {
	tmplPath := fmt.Sprintf("templates/%s.html", templateName)

	tmpl, err := template.ParseFS(templatesFS, tmplPath)
	if err != nil {
		// pkg/errors.Wrapf adds context while preserving stack trace.
		return "", errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	return body.String(), nil
}

// SendEmail sends an email with HTML rendered from a template.
//
// Steps:
//   - Render the embedded template with data
//   - Call Resend API to send the email
func (c *Client) SendEmail(ctx context.Context, to, subject string, templateName Template, data map[string]string) error {
	html, err := Render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		// Resend may require a verified domain/address for the sender.
		From:    fmt.Sprintf("%s <%s>", senderName, senderAddress),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Debug().
		Str("email_id", sent.Id).
		Str("template", string(templateName)).
		Msg("email accepted by provider")

	return nil
}
