package model

import "time"

// DocType distinguishes quotes from invoices. Fixed at creation.
type DocType string

const (
	DocTypeQuote   DocType = "QUOTE"
	DocTypeInvoice DocType = "INVOICE"
)

// Valid reports whether the document type is one of the known kinds.
func (t DocType) Valid() bool {
	return t == DocTypeQuote || t == DocTypeInvoice
}

// Status describes the document lifecycle.
type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusPending     Status = "PENDING"
	StatusSent        Status = "SENT"
	StatusPendingSent Status = "PENDING_SENT"
	StatusAccepted    Status = "ACCEPTED"
	StatusPaid        Status = "PAID"
	StatusRejected    Status = "REJECTED"
)

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusPaid || s == StatusRejected
}

// InitialStatus returns the creation status for a document type.
func InitialStatus(t DocType) Status {
	if t == DocTypeQuote {
		return StatusDraft
	}
	return StatusPending
}

// DispatchedStatus returns the status after a successful email dispatch.
func DispatchedStatus(t DocType) Status {
	if t == DocTypeQuote {
		return StatusSent
	}
	return StatusPendingSent
}

// DecidedStatus returns the terminal status produced by a client decision.
func DecidedStatus(t DocType, d Decision) Status {
	if d == DecisionRejected {
		return StatusRejected
	}
	if t == DocTypeQuote {
		return StatusAccepted
	}
	return StatusPaid
}

// LineItem is a single billable row on a document.
type LineItem struct {
	Description    string  `json:"desc"`
	Quantity       int     `json:"qty"`
	UnitPrice      float64 `json:"price"`
	TaxRatePercent float64 `json:"taxRate"`
}

// Document is a quote or invoice tracked through its lifecycle.
// Subtotal, TaxAmount and Total are derived from Items and must be
// recomputed whenever Items change.
type Document struct {
	ID               string     `json:"id"`
	DocType          DocType    `json:"docType"`
	CustomerName     string     `json:"customerName"`
	CustomerEmail    string     `json:"customerEmail"`
	GSTNumber        string     `json:"gstNumber,omitempty"`
	BillingAddr      string     `json:"billingAddr"`
	Terms            string     `json:"termsAndConditions"`
	Items            []LineItem `json:"items"`
	Currency         string     `json:"currency"`
	Subtotal         float64    `json:"subtotal"`
	TaxAmount        float64    `json:"taxAmount"`
	Total            float64    `json:"total"`
	SettlementAmount float64    `json:"settlementAmount"`
	Status           Status     `json:"status"`
	ClientDecision   *Decision  `json:"clientDecision"`
	DecisionAt       *time.Time `json:"decisionAt,omitempty"`
	LastSentTo       string     `json:"lastSentTo,omitempty"`
	LastSentAt       *time.Time `json:"lastSentAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Decided reports whether a client decision has been recorded.
func (d *Document) Decided() bool {
	return d.ClientDecision != nil
}
