package handlers

import (
	"context"

	"github.com/bluedot/paylink/internal/adapter/mail"
	"github.com/bluedot/paylink/internal/domain/model"
	"github.com/bluedot/paylink/internal/usecase"
)

// DocumentFacade describes document lifecycle operations exposed via HTTP.
type DocumentFacade interface {
	CreateDocument(ctx context.Context, sub usecase.Submission) (*model.Document, error)
	GetDocument(ctx context.Context, id string) (*model.Document, error)
	RecordDecision(ctx context.Context, id, rawDecision string) (*model.Document, error)
}

// DispatchFacade describes the email dispatch operation.
type DispatchFacade interface {
	SendDocumentEmail(ctx context.Context, creds mail.Credentials, doc model.Document) (*model.Document, error)
}

// BillingFacade aggregates the full set of operations used across handlers.
type BillingFacade interface {
	DocumentFacade
	DispatchFacade
}
