package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/bluedot/paylink/internal/adapter/status"
	"github.com/bluedot/paylink/internal/domain/model"
)

// DecisionWatcher polls the document read endpoint for every tracked id and
// emits a one-time event the first time a client decision appears.
//
// Tracked ids are checked concurrently within a tick; a slow or failing
// check for one id never blocks the others.
type DecisionWatcher struct {
	client       status.Client
	pollInterval time.Duration
	workers      int
	logger       *slog.Logger

	trackedMu sync.Mutex
	tracked   map[string]struct{}

	events chan model.DecisionEvent
	jobs   chan string
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDecisionWatcher constructs a watcher with the given poll interval and
// worker count.
func NewDecisionWatcher(client status.Client, pollInterval time.Duration, workers int, logger *slog.Logger) *DecisionWatcher {
	if workers <= 0 {
		workers = 1
	}
	return &DecisionWatcher{
		client:       client,
		pollInterval: pollInterval,
		workers:      workers,
		logger:       logger,
		tracked:      make(map[string]struct{}),
		events:       make(chan model.DecisionEvent, workers),
		jobs:         make(chan string, workers*4),
	}
}

// Track adds a document id to the watched set.
func (w *DecisionWatcher) Track(id string) {
	if id == "" {
		return
	}
	w.trackedMu.Lock()
	w.tracked[id] = struct{}{}
	w.trackedMu.Unlock()
}

// TrackedCount returns how many ids are still awaiting a decision.
func (w *DecisionWatcher) TrackedCount() int {
	w.trackedMu.Lock()
	defer w.trackedMu.Unlock()
	return len(w.tracked)
}

// Events delivers one DecisionEvent per decided document.
func (w *DecisionWatcher) Events() <-chan model.DecisionEvent {
	return w.events
}

// Start launches background polling.
func (w *DecisionWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker(runCtx)
	}

	w.wg.Add(1)
	go w.dispatch(runCtx)
}

// Stop ceases all future polls and waits for in-flight checks to finish.
func (w *DecisionWatcher) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *DecisionWatcher) dispatch(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.jobs)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.enqueueTracked(ctx)
		}
	}
}

func (w *DecisionWatcher) enqueueTracked(ctx context.Context) {
	w.trackedMu.Lock()
	ids := make([]string, 0, len(w.tracked))
	for id := range w.tracked {
		ids = append(ids, id)
	}
	w.trackedMu.Unlock()

	for _, id := range ids {
		select {
		case <-ctx.Done():
			return
		case w.jobs <- id:
		}
	}
}

func (w *DecisionWatcher) worker(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-w.jobs:
			if !ok {
				return
			}
			w.check(ctx, id)
		}
	}
}

func (w *DecisionWatcher) check(ctx context.Context, id string) {
	doc, err := w.client.Fetch(ctx, id)
	if err != nil {
		// An unknown id is "not yet decided", not a tracking failure.
		if errors.Is(err, status.ErrUnknownDocument) {
			return
		}
		w.logger.Error("status check failed", slog.String("id", id), slog.String("error", err.Error()))
		return
	}
	if !doc.Decided() {
		return
	}

	event := model.DecisionEvent{
		DocumentID: doc.ID,
		Decision:   *doc.ClientDecision,
		Status:     doc.Status,
	}
	if doc.DecisionAt != nil {
		event.DecidedAt = *doc.DecisionAt
	}

	// Untrack and emit atomically so overlapping checks for the same id
	// produce exactly one event.
	w.trackedMu.Lock()
	_, stillTracked := w.tracked[id]
	if stillTracked {
		delete(w.tracked, id)
	}
	w.trackedMu.Unlock()
	if !stillTracked {
		return
	}

	select {
	case <-ctx.Done():
	case w.events <- event:
		w.logger.Info("client decision observed",
			slog.String("id", event.DocumentID),
			slog.String("decision", string(event.Decision)),
		)
	}
}
