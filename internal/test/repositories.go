package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
	"github.com/bluedot/paylink/internal/domain/model"
)

// DocumentRepositoryStub stores documents in-memory for tests.
type DocumentRepositoryStub struct {
	mu   sync.Mutex
	Docs map[string]model.Document
	Err  error
}

// NewDocumentRepositoryStub constructs a stub repository with an
// initialized map.
func NewDocumentRepositoryStub() *DocumentRepositoryStub {
	return &DocumentRepositoryStub{Docs: make(map[string]model.Document)}
}

// Create inserts a document unless the id exists or the stub has an
// explicit error.
func (s *DocumentRepositoryStub) Create(ctx context.Context, doc model.Document) (*model.Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.Docs[doc.ID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.Docs[doc.ID] = doc
	out := doc
	return &out, nil
}

// Amend replaces the document for an id.
func (s *DocumentRepositoryStub) Amend(ctx context.Context, doc model.Document) (*model.Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.Docs[doc.ID]; ok && existing.ClientDecision != nil {
		return nil, domainErrors.ErrConflictingDecision
	}
	s.Docs[doc.ID] = doc
	out := doc
	return &out, nil
}

// Get fetches a document by id or returns not found.
func (s *DocumentRepositoryStub) Get(ctx context.Context, id string) (*model.Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.Docs[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := doc
	return &out, nil
}

// MarkDispatched records a dispatch on the stored document.
func (s *DocumentRepositoryStub) MarkDispatched(ctx context.Context, id, recipient string, at time.Time) (*model.Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.Docs[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	doc.Status = model.DispatchedStatus(doc.DocType)
	doc.LastSentTo = recipient
	doc.LastSentAt = &at
	s.Docs[id] = doc
	out := doc
	return &out, nil
}

// ApplyDecision records a decision on the stored document.
func (s *DocumentRepositoryStub) ApplyDecision(ctx context.Context, id string, decision model.Decision, at time.Time) (*model.Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.Docs[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if doc.ClientDecision != nil {
		if *doc.ClientDecision == decision {
			out := doc
			return &out, nil
		}
		return nil, domainErrors.ErrConflictingDecision
	}
	d := decision
	doc.ClientDecision = &d
	doc.DecisionAt = &at
	doc.Status = model.DecidedStatus(doc.DocType, decision)
	s.Docs[id] = doc
	out := doc
	return &out, nil
}
