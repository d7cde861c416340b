package worker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bluedot/paylink/internal/adapter/status"
	"github.com/bluedot/paylink/internal/config"
)

// Module provides the decision watcher.
var Module = fx.Provide(func(client status.Client, cfg *config.Config, logger *slog.Logger) *DecisionWatcher {
	return NewDecisionWatcher(client, cfg.StatusPollInterval, cfg.PollWorkers, logger)
})
