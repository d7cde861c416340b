package test

import (
	"math/rand"
	"sync"
	"time"

	"github.com/bluedot/paylink/internal/domain/model"
)

// NewTestDocument builds a minimal valid document for tests.
func NewTestDocument(id string, docType model.DocType) model.Document {
	return model.Document{
		ID:            id,
		DocType:       docType,
		CustomerName:  "Acme Corp",
		CustomerEmail: "client@example.com",
		BillingAddr:   "123 Main St, New York, NY 10001",
		Terms:         "Payment due within 30 days.",
		Items: []model.LineItem{
			{Description: "Design", Quantity: 2, UnitPrice: 100, TaxRatePercent: 10},
		},
		Currency:       "USD",
		Subtotal:       200,
		TaxAmount:      20,
		Total:          220,
		Status:         model.InitialStatus(docType),
		ClientDecision: nil,
		CreatedAt:      time.Unix(0, 0).UTC(),
	}
}

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	rngMu.Lock()
	defer rngMu.Unlock()
	length := minLen
	if maxLen > minLen {
		length += rng.Intn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[rng.Intn(len(asciiLetters))]
	}
	return string(buf)
}
