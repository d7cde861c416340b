package app

import (
	"context"

	"github.com/bluedot/paylink/internal/adapter/mail"
	"github.com/bluedot/paylink/internal/domain/model"
	"github.com/bluedot/paylink/internal/notify"
	"github.com/bluedot/paylink/internal/usecase"
)

// BillingFacade aggregates document operations for the HTTP layer.
type BillingFacade struct {
	documents *usecase.DocumentUseCase
	notifier  *notify.Notifier
}

// NewBillingFacade constructs BillingFacade.
func NewBillingFacade(documents *usecase.DocumentUseCase, notifier *notify.Notifier) *BillingFacade {
	return &BillingFacade{documents: documents, notifier: notifier}
}

// CreateDocument validates a submission and stores the materialized document.
func (f *BillingFacade) CreateDocument(ctx context.Context, sub usecase.Submission) (*model.Document, error) {
	return f.documents.Create(ctx, sub)
}

// GetDocument returns the stored document for id.
func (f *BillingFacade) GetDocument(ctx context.Context, id string) (*model.Document, error) {
	return f.documents.Get(ctx, id)
}

// RecordDecision applies a counterparty decision to a document.
func (f *BillingFacade) RecordDecision(ctx context.Context, id, rawDecision string) (*model.Document, error) {
	return f.documents.Decide(ctx, id, rawDecision)
}

// SendDocumentEmail stores the submitted document and dispatches it to the
// customer. The document is only marked dispatched after the transport
// reports success.
func (f *BillingFacade) SendDocumentEmail(ctx context.Context, creds mail.Credentials, doc model.Document) (*model.Document, error) {
	stored, err := f.documents.PrepareForSend(ctx, doc)
	if err != nil {
		return nil, err
	}
	return f.notifier.Dispatch(ctx, creds, stored)
}
