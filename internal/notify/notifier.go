package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/bluedot/paylink/internal/adapter/mail"
	"github.com/bluedot/paylink/internal/domain/model"
	"github.com/bluedot/paylink/internal/domain/repository"
)

// Notifier composes the outbound document email with its decision links and
// delegates delivery to the configured mail transport. On transport success
// it marks the document dispatched through the store; on failure the
// document is left untouched so the caller can retry safely.
type Notifier struct {
	docs      repository.DocumentRepository
	transport mail.Transport
	baseURL   string
	logger    *slog.Logger
	now       func() time.Time
}

// NewNotifier constructs a Notifier for the given public base URL.
func NewNotifier(docs repository.DocumentRepository, transport mail.Transport, baseURL string, logger *slog.Logger) *Notifier {
	return &Notifier{
		docs:      docs,
		transport: transport,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    logger,
		now:       time.Now,
	}
}

// DecisionLink builds the externally reachable decision URL for a document.
// The id is percent-encoded because it contains a reserved "/".
func (n *Notifier) DecisionLink(id string, decision model.Decision) string {
	return fmt.Sprintf("%s/api/invoices/%s/decision?decision=%s", n.baseURL, url.PathEscape(id), decision)
}

// Subject returns the email subject line for a document.
func Subject(doc *model.Document) string {
	return fmt.Sprintf("%s from Blue Dot (Action Required) - %s", doc.DocType, doc.ID)
}

// Dispatch emails the document to its customer and records the dispatch.
func (n *Notifier) Dispatch(ctx context.Context, creds mail.Credentials, doc *model.Document) (*model.Document, error) {
	approveURL := n.DecisionLink(doc.ID, model.DecisionApproved)
	rejectURL := n.DecisionLink(doc.ID, model.DecisionRejected)

	html, err := RenderDocumentHTML(doc, approveURL, rejectURL)
	if err != nil {
		return nil, fmt.Errorf("render document email: %w", err)
	}

	msg := mail.Message{
		To:      doc.CustomerEmail,
		Subject: Subject(doc),
		Text:    plainSummary(doc),
		HTML:    html,
	}

	if err := n.transport.Send(ctx, creds, msg); err != nil {
		return nil, err
	}

	updated, err := n.docs.MarkDispatched(ctx, doc.ID, doc.CustomerEmail, n.now().UTC())
	if err != nil {
		return nil, err
	}
	n.logger.Info("document dispatched",
		slog.String("id", doc.ID),
		slog.String("to", doc.CustomerEmail),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}

func plainSummary(doc *model.Document) string {
	return fmt.Sprintf("%s total: %s %.2f. Please view the document and use the links to approve or reject it.",
		doc.DocType, doc.Currency, doc.Total)
}
