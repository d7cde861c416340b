package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
)

const altBoundary = "paylink-alt-boundary"

// SMTPTransport sends mail through an SMTP relay using the per-request
// sender credentials for both authentication and the From address.
type SMTPTransport struct {
	host   string
	port   int
	logger *slog.Logger

	// sendMail is swappable in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPTransport constructs an SMTP transport for the given relay.
func NewSMTPTransport(host string, port int, logger *slog.Logger) *SMTPTransport {
	return &SMTPTransport{host: host, port: port, logger: logger, sendMail: smtp.SendMail}
}

// Send delivers the message synchronously.
func (t *SMTPTransport) Send(ctx context.Context, creds Credentials, msg Message) error {
	if creds.Username == "" || creds.Password == "" {
		return fmt.Errorf("%w: smtp credentials missing", domainErrors.ErrTransportFailure)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", creds.Username)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", altBoundary)

	fmt.Fprintf(&b, "--%s\r\n", altBoundary)
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.Text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", altBoundary)
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "--%s--\r\n", altBoundary)

	auth := smtp.PlainAuth("", creds.Username, creds.Password, t.host)
	addr := fmt.Sprintf("%s:%d", t.host, t.port)
	if err := t.sendMail(addr, auth, creds.Username, []string{msg.To}, []byte(b.String())); err != nil {
		t.logger.Error("smtp send failed", slog.String("to", msg.To), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", domainErrors.ErrTransportFailure, err)
	}
	t.logger.Info("email sent via smtp", slog.String("to", msg.To), slog.String("subject", msg.Subject))
	return nil
}
