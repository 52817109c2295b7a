// Package console writes digests to standard output when no SMTP
// credentials are configured, so scheduled runs still surface new
// listings in their logs.
package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bakkerme/internwatch/internal/outputs/email"
)

type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, message email.Message) error {
	_ = ctx
	body := message.TextBody
	if body == "" {
		body = message.HTMLBody
	}
	_, err := fmt.Fprintf(s.out, "%s\n\n%s\n", message.Subject, body)
	if err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	return nil
}
