package status

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bluedot/paylink/internal/config"
)

// Module provides the HTTP status client.
var Module = fx.Provide(func(cfg *config.Config, logger *slog.Logger) (Client, error) {
	client, err := NewHTTPClient(cfg.BaseURL, logger)
	if err != nil {
		return nil, err
	}
	return client, nil
})
