package repository

import (
	"context"
	"time"

	"github.com/bluedot/paylink/internal/domain/model"
)

// DocumentRepository describes access to the document store.
//
// Create rejects an id that is already present; Amend is the explicit
// replacement operation used when a document is re-submitted for sending.
// ApplyDecision and MarkDispatched are atomic read-modify-write operations.
type DocumentRepository interface {
	Create(ctx context.Context, doc model.Document) (*model.Document, error)
	Amend(ctx context.Context, doc model.Document) (*model.Document, error)
	Get(ctx context.Context, id string) (*model.Document, error)
	MarkDispatched(ctx context.Context, id, recipient string, at time.Time) (*model.Document, error)
	ApplyDecision(ctx context.Context, id string, decision model.Decision, at time.Time) (*model.Document, error)
}
