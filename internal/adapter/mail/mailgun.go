package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mailgun/mailgun-go/v4"

	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
)

// MailgunTransport sends mail through the Mailgun API. The API key and
// domain come from configuration; the per-request username is used as the
// sender address.
type MailgunTransport struct {
	mg         mailgun.Mailgun
	senderName string
	logger     *slog.Logger
}

// NewMailgunTransport constructs a Mailgun transport.
func NewMailgunTransport(domain, apiKey, senderName string, logger *slog.Logger) *MailgunTransport {
	return &MailgunTransport{
		mg:         mailgun.NewMailgun(domain, apiKey),
		senderName: senderName,
		logger:     logger,
	}
}

// Send delivers the message through Mailgun.
func (t *MailgunTransport) Send(ctx context.Context, creds Credentials, msg Message) error {
	if creds.Username == "" {
		return fmt.Errorf("%w: sender address missing", domainErrors.ErrTransportFailure)
	}

	from := fmt.Sprintf("%s <%s>", t.senderName, creds.Username)
	message := t.mg.NewMessage(from, msg.Subject, msg.Text, msg.To)
	message.SetHtml(msg.HTML)

	resp, id, err := t.mg.Send(ctx, message)
	if err != nil {
		t.logger.Error("mailgun send failed", slog.String("to", msg.To), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", domainErrors.ErrTransportFailure, err)
	}
	t.logger.Info("email sent via mailgun", slog.String("to", msg.To), slog.String("id", id), slog.String("resp", resp))
	return nil
}
