package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/bluedot/paylink/internal/currency"
	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
	"github.com/bluedot/paylink/internal/domain/model"
	"github.com/bluedot/paylink/internal/domain/repository"
)

// Submission carries the form data used to materialize a new document.
type Submission struct {
	DocType       model.DocType
	CustomerName  string
	CustomerEmail string
	GSTNumber     string
	BillingAddr   string
	Terms         string
	Items         []model.LineItem
	Currency      string
}

// DocumentUseCase validates submissions and materializes documents.
type DocumentUseCase struct {
	docs      repository.DocumentRepository
	converter *currency.Converter
	ids       *DocIDGenerator
	now       func() time.Time
}

// NewDocumentUseCase constructs DocumentUseCase.
func NewDocumentUseCase(docs repository.DocumentRepository, converter *currency.Converter, ids *DocIDGenerator) *DocumentUseCase {
	return &DocumentUseCase{docs: docs, converter: converter, ids: ids, now: time.Now}
}

// Create validates the submission, derives totals and settlement amount,
// assigns a fresh id and stores the document in its initial status.
func (u *DocumentUseCase) Create(ctx context.Context, sub Submission) (*model.Document, error) {
	if err := ValidateSubmission(sub); err != nil {
		return nil, err
	}

	subtotal, taxAmount := Totals(sub.Items)
	total := subtotal + taxAmount

	settlement, err := u.converter.Convert(total, sub.Currency)
	if err != nil {
		return nil, err
	}

	doc := model.Document{
		ID:               u.ids.Next(),
		DocType:          sub.DocType,
		CustomerName:     sub.CustomerName,
		CustomerEmail:    sub.CustomerEmail,
		GSTNumber:        sub.GSTNumber,
		BillingAddr:      sub.BillingAddr,
		Terms:            sub.Terms,
		Items:            sub.Items,
		Currency:         sub.Currency,
		Subtotal:         subtotal,
		TaxAmount:        taxAmount,
		Total:            total,
		SettlementAmount: settlement,
		Status:           model.InitialStatus(sub.DocType),
		ClientDecision:   nil,
		CreatedAt:        u.now().UTC(),
	}

	return u.docs.Create(ctx, doc)
}

// Get returns the stored document for id.
func (u *DocumentUseCase) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, domainErrors.ErrNotFound
	}
	return u.docs.Get(ctx, id)
}

// Decide normalizes and records a counterparty decision for a document.
func (u *DocumentUseCase) Decide(ctx context.Context, id, rawDecision string) (*model.Document, error) {
	decision, ok := model.ParseDecision(rawDecision)
	if !ok {
		return nil, domainErrors.ErrInvalidDecision
	}
	return u.docs.ApplyDecision(ctx, id, decision, u.now().UTC())
}

// PrepareForSend stores a document submitted through the email-send
// endpoint. Totals and the settlement amount are recomputed from the line
// items so the stored record can never be stale relative to them. A known
// id is amended explicitly; an unknown id is inserted.
func (u *DocumentUseCase) PrepareForSend(ctx context.Context, doc model.Document) (*model.Document, error) {
	if doc.ID == "" {
		return nil, domainErrors.NewValidationError("doc.id", "must not be empty")
	}
	if email := strings.TrimSpace(doc.CustomerEmail); email == "" || !strings.Contains(email, "@") {
		return nil, domainErrors.NewValidationError("doc.customerEmail", "must contain @")
	}
	if !doc.DocType.Valid() {
		return nil, domainErrors.NewValidationError("doc.docType", "must be QUOTE or INVOICE")
	}

	doc.Subtotal, doc.TaxAmount = Totals(doc.Items)
	doc.Total = doc.Subtotal + doc.TaxAmount

	settlement, err := u.converter.Convert(doc.Total, doc.Currency)
	if err != nil {
		return nil, err
	}
	doc.SettlementAmount = settlement

	if doc.Status == "" {
		doc.Status = model.InitialStatus(doc.DocType)
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = u.now().UTC()
	}

	return u.docs.Amend(ctx, doc)
}

// Totals sums line totals and line taxes across items before any rounding.
func Totals(items []model.LineItem) (subtotal, taxAmount float64) {
	for _, item := range items {
		lineTotal := float64(item.Quantity) * item.UnitPrice
		subtotal += lineTotal
		taxAmount += lineTotal * item.TaxRatePercent / 100
	}
	return subtotal, taxAmount
}
