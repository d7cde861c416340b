package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/fx"

	"github.com/bluedot/paylink/internal/config"
	"github.com/bluedot/paylink/internal/di"
	"github.com/bluedot/paylink/internal/worker"
)

// paylink-watch polls the backend read endpoint for the given document ids
// and logs a single event per decision. It exits once every tracked
// document has been decided, or on SIGINT/SIGTERM.
func main() {
	if err := watch(); err != nil {
		fmt.Fprintf(os.Stderr, "paylink-watch: %v\n", err)
		os.Exit(1)
	}
}

func watch() error {
	var (
		cfg     *config.Config
		log     *slog.Logger
		watcher *worker.DecisionWatcher
	)
	fxApp := fx.New(
		fx.NopLogger,
		di.WatchModule(),
		fx.Populate(&cfg, &log, &watcher),
	)
	if err := fxApp.Err(); err != nil {
		return err
	}

	ids := splitIDs(cfg.WatchIDs)
	if len(ids) == 0 {
		return fmt.Errorf("no document ids to watch: set -watch or WATCH_IDS")
	}

	for _, id := range ids {
		watcher.Track(id)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher.Start(ctx)
	defer watcher.Stop()

	remaining := watcher.TrackedCount()
	for remaining > 0 {
		select {
		case <-ctx.Done():
			return nil
		case event := <-watcher.Events():
			log.Info("decision received",
				slog.String("id", event.DocumentID),
				slog.String("decision", string(event.Decision)),
				slog.String("status", string(event.Status)),
				slog.Time("decided_at", event.DecidedAt),
			)
			remaining--
		}
	}

	return nil
}

func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
