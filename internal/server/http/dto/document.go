package dto

import "github.com/bluedot/paylink/internal/domain/model"

// LineItemRequest mirrors the form field names used by the frontend.
type LineItemRequest struct {
	Description    string  `json:"desc"`
	Quantity       int     `json:"qty"`
	UnitPrice      float64 `json:"price"`
	TaxRatePercent float64 `json:"taxRate"`
}

// SubmissionRequest is the document creation payload.
type SubmissionRequest struct {
	DocType       string            `json:"docType"`
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail"`
	GSTNumber     string            `json:"gstNumber"`
	BillingAddr   string            `json:"billingAddr"`
	Terms         string            `json:"termsAndConditions"`
	Items         []LineItemRequest `json:"items"`
	Currency      string            `json:"currency"`
}

// DomainItems converts the request rows to domain line items.
func (r SubmissionRequest) DomainItems() []model.LineItem {
	items := make([]model.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, model.LineItem{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			TaxRatePercent: item.TaxRatePercent,
		})
	}
	return items
}

// SendEmailRequest is the dispatch payload: per-request SMTP credentials
// plus the document to deliver.
type SendEmailRequest struct {
	SMTPUser string          `json:"smtpUser"`
	SMTPPass string          `json:"smtpPass"`
	Doc      *model.Document `json:"doc"`
}

// SendEmailResponse acknowledges a successful dispatch.
type SendEmailResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// ErrorResponse carries a human-readable failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
}
