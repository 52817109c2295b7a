// Package output delivers the run digest.
package output

import (
	"context"
	"fmt"
	"html"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/outputs/email"
)

type EmailProcessor struct {
	name   string
	config config.EmailOutput
	sender email.Sender
}

func NewEmailProcessor(cfg *config.EmailOutput, sender email.Sender) (*EmailProcessor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("email config is required")
	}
	return &EmailProcessor{
		name:   "email",
		config: *cfg,
		sender: sender,
	}, nil
}

func (p *EmailProcessor) Name() string {
	return p.name
}

func (p *EmailProcessor) Validate() error {
	if p.sender == nil {
		return fmt.Errorf("email sender is required")
	}
	if p.config.To == "" {
		return fmt.Errorf("email recipient is required")
	}
	return nil
}

func (p *EmailProcessor) Deliver(ctx context.Context, blocks []*core.ListingBlock, digest *core.RunDigest) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("email processor validation failed: %w", err)
	}
	if digest == nil {
		return fmt.Errorf("email delivery requires a digest")
	}

	subject := p.config.Subject
	if subject == "" {
		subject = fmt.Sprintf("Intern alert: %d new internships", digest.ListingCount)
	}
	from := p.config.From
	if from == "" {
		from = p.config.To
	}

	textBody := digest.Markdown
	htmlBody := digest.HTML
	if digest.Headline != "" {
		textBody = digest.Headline + "\n\n" + textBody
		htmlBody = "<p><strong>" + html.EscapeString(digest.Headline) + "</strong></p>\n" + htmlBody
	}

	return p.sender.Send(ctx, email.Message{
		From:     from,
		To:       p.config.To,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
}
