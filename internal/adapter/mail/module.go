package mail

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bluedot/paylink/internal/config"
)

// Module selects the configured email transport.
var Module = fx.Provide(func(cfg *config.Config, logger *slog.Logger) Transport {
	switch cfg.MailProvider {
	case "mailgun":
		return NewMailgunTransport(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.SenderName, logger)
	case "mock":
		return NewMockTransport(logger)
	default:
		return NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, logger)
	}
})
