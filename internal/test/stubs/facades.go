package stubs

import (
	"context"

	"github.com/bluedot/paylink/internal/adapter/mail"
	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
	"github.com/bluedot/paylink/internal/domain/model"
	"github.com/bluedot/paylink/internal/usecase"
)

// BillingFacadeStub implements the handler facade with overridable funcs.
type BillingFacadeStub struct {
	CreateFn func(ctx context.Context, sub usecase.Submission) (*model.Document, error)
	GetFn    func(ctx context.Context, id string) (*model.Document, error)
	DecideFn func(ctx context.Context, id, rawDecision string) (*model.Document, error)
	SendFn   func(ctx context.Context, creds mail.Credentials, doc model.Document) (*model.Document, error)
}

// CreateDocument delegates to CreateFn or returns an empty quote.
func (s BillingFacadeStub) CreateDocument(ctx context.Context, sub usecase.Submission) (*model.Document, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, sub)
	}
	return &model.Document{ID: "01/25-26", DocType: sub.DocType, Status: model.InitialStatus(sub.DocType)}, nil
}

// GetDocument delegates to GetFn or reports not found.
func (s BillingFacadeStub) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// RecordDecision delegates to DecideFn or reports not found.
func (s BillingFacadeStub) RecordDecision(ctx context.Context, id, rawDecision string) (*model.Document, error) {
	if s.DecideFn != nil {
		return s.DecideFn(ctx, id, rawDecision)
	}
	return nil, domainErrors.ErrNotFound
}

// SendDocumentEmail delegates to SendFn or echoes the document back.
func (s BillingFacadeStub) SendDocumentEmail(ctx context.Context, creds mail.Credentials, doc model.Document) (*model.Document, error) {
	if s.SendFn != nil {
		return s.SendFn(ctx, creds, doc)
	}
	doc.Status = model.DispatchedStatus(doc.DocType)
	return &doc, nil
}

// StatusClientStub implements the status read client for watcher tests.
type StatusClientStub struct {
	FetchFn func(ctx context.Context, id string) (*model.Document, error)
}

// Fetch delegates to FetchFn.
func (s StatusClientStub) Fetch(ctx context.Context, id string) (*model.Document, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}
