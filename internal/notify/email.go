package notify

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"
)

//go:embed templates/*.html
var emailTemplates embed.FS

var notificationTemplate = template.Must(template.ParseFS(emailTemplates, "templates/notification.html"))

// EmailSender is the part of the Resend client the sink uses
type EmailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailConfig configures the email sink
type EmailConfig struct {
	Enabled bool
	APIKey  string
	From    string
}

// EmailSink sends notifications through Resend
type EmailSink struct {
	cfg    EmailConfig
	sender EmailSender
}

// NewEmailSink creates a sink backed by a Resend client
func NewEmailSink(cfg EmailConfig) *EmailSink {
	client := resend.NewClient(cfg.APIKey)
	return &EmailSink{cfg: cfg, sender: client.Emails}
}

// NewEmailSinkWithSender creates a sink that sends through sender
func NewEmailSinkWithSender(cfg EmailConfig, sender EmailSender) *EmailSink {
	return &EmailSink{cfg: cfg, sender: sender}
}

// Name implements Sink
func (s *EmailSink) Name() string {
	return "email"
}

// Notify implements Sink
func (s *EmailSink) Notify(ctx context.Context, to Recipient, msg Message) error {
	ok, err := s.checkPreconditions(to)
	if !ok {
		return err
	}

	body, err := renderEmail(msg)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.cfg.From,
		To:      []string{to.Email},
		Subject: msg.Title,
		Html:    body,
	}
	if _, err := s.sender.Send(params); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to.Email, err)
	}

	logger.Debug("Email sent", "to", to.Email, "type", msg.Type)
	return nil
}

// checkPreconditions reports whether an email should be sent. A disabled sink
// is not an error; an enabled sink without credentials is.
func (s *EmailSink) checkPreconditions(to Recipient) (bool, error) {
	if !s.cfg.Enabled {
		return false, nil
	}
	if s.cfg.APIKey == "" || s.cfg.From == "" {
		return false, errors.New("RESEND_API_KEY or FROM_EMAIL is not set")
	}
	if strings.TrimSpace(to.Email) == "" {
		return false, nil
	}
	return true, nil
}

func renderEmail(msg Message) (string, error) {
	data := struct {
		Title string
		Lines []template.HTML
	}{
		Title: msg.Title,
	}
	// Text is already escaped HTML from the composer
	for _, line := range strings.Split(msg.Text, "\n") {
		data.Lines = append(data.Lines, template.HTML(line))
	}

	var buf bytes.Buffer
	if err := notificationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute notification template: %w", err)
	}
	return buf.String(), nil
}
