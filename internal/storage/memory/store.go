package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
	"github.com/bluedot/paylink/internal/domain/model"
	"github.com/bluedot/paylink/internal/domain/repository"
)

// Store keeps documents in process memory for the lifetime of the service.
// Entries never expire; the cache exists purely as a concurrent key-value
// table. All mutations run under a store-wide mutex so a decision and a
// dispatch for the same id can never interleave.
type Store struct {
	mu     sync.Mutex
	docs   *gocache.Cache
	logger *slog.Logger
}

var _ repository.DocumentRepository = (*Store)(nil)

// New creates an empty document store.
func New(logger *slog.Logger) *Store {
	return &Store{
		docs:   gocache.New(gocache.NoExpiration, 0),
		logger: logger,
	}
}

// Create inserts a new document. An id that is already present is rejected
// so a re-submission cannot silently overwrite an earlier document.
func (s *Store) Create(ctx context.Context, doc model.Document) (*model.Document, error) {
	if doc.ID == "" {
		return nil, domainErrors.NewValidationError("id", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs.Get(doc.ID); exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := cloneDocument(doc)
	s.docs.Set(doc.ID, stored, gocache.NoExpiration)
	s.logger.Info("document stored",
		slog.String("id", doc.ID),
		slog.String("type", string(doc.DocType)),
		slog.String("status", string(doc.Status)),
	)
	return copyOut(stored), nil
}

// Amend replaces the stored document for an id, or inserts it when absent.
// This is the explicit re-send path; a decided document cannot be amended.
func (s *Store) Amend(ctx context.Context, doc model.Document) (*model.Document, error) {
	if doc.ID == "" {
		return nil, domainErrors.NewValidationError("id", "must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.get(doc.ID); ok && existing.Decided() {
		return nil, domainErrors.ErrConflictingDecision
	}
	stored := cloneDocument(doc)
	s.docs.Set(doc.ID, stored, gocache.NoExpiration)
	return copyOut(stored), nil
}

// Get returns the document for id or ErrNotFound. It never blocks on
// in-flight mutations for other ids longer than the critical section.
func (s *Store) Get(ctx context.Context, id string) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.get(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return copyOut(doc), nil
}

// MarkDispatched records a successful email dispatch: status moves to the
// sent state for the document type and the recipient/timestamp are kept.
func (s *Store) MarkDispatched(ctx context.Context, id, recipient string, at time.Time) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.get(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	doc.Status = model.DispatchedStatus(doc.DocType)
	doc.LastSentTo = recipient
	doc.LastSentAt = &at
	s.docs.Set(id, doc, gocache.NoExpiration)
	return copyOut(doc), nil
}

// ApplyDecision records the counterparty decision for a document.
//
// A repeated identical decision is a no-op returning the already-decided
// document; a differing second decision fails with ErrConflictingDecision
// and leaves the record untouched.
func (s *Store) ApplyDecision(ctx context.Context, id string, decision model.Decision, at time.Time) (*model.Document, error) {
	if decision != model.DecisionApproved && decision != model.DecisionRejected {
		return nil, domainErrors.ErrInvalidDecision
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.get(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	if doc.ClientDecision != nil {
		if *doc.ClientDecision == decision {
			return copyOut(doc), nil
		}
		return nil, domainErrors.ErrConflictingDecision
	}

	d := decision
	doc.ClientDecision = &d
	doc.DecisionAt = &at
	doc.Status = model.DecidedStatus(doc.DocType, decision)
	s.docs.Set(id, doc, gocache.NoExpiration)
	s.logger.Info("decision recorded",
		slog.String("id", id),
		slog.String("decision", string(decision)),
		slog.String("status", string(doc.Status)),
	)
	return copyOut(doc), nil
}

// get must be called with the mutex held.
func (s *Store) get(id string) (model.Document, bool) {
	raw, ok := s.docs.Get(id)
	if !ok {
		return model.Document{}, false
	}
	doc, ok := raw.(model.Document)
	return doc, ok
}

func cloneDocument(doc model.Document) model.Document {
	if doc.Items != nil {
		items := make([]model.LineItem, len(doc.Items))
		copy(items, doc.Items)
		doc.Items = items
	}
	if doc.ClientDecision != nil {
		d := *doc.ClientDecision
		doc.ClientDecision = &d
	}
	if doc.DecisionAt != nil {
		at := *doc.DecisionAt
		doc.DecisionAt = &at
	}
	if doc.LastSentAt != nil {
		at := *doc.LastSentAt
		doc.LastSentAt = &at
	}
	return doc
}

func copyOut(doc model.Document) *model.Document {
	out := cloneDocument(doc)
	return &out
}
