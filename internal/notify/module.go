package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bluedot/paylink/internal/adapter/mail"
	"github.com/bluedot/paylink/internal/config"
	"github.com/bluedot/paylink/internal/domain/repository"
)

// Module provides the document notifier.
var Module = fx.Provide(func(docs repository.DocumentRepository, transport mail.Transport, cfg *config.Config, logger *slog.Logger) *Notifier {
	return NewNotifier(docs, transport, cfg.BaseURL, logger)
})
