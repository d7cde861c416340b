package usecase

import (
	"strings"

	domainErrors "github.com/bluedot/paylink/internal/domain/errors"
)

// ValidateSubmission checks a document submission and reports the first
// violated constraint. Inputs are never coerced silently.
func ValidateSubmission(sub Submission) error {
	if !sub.DocType.Valid() {
		return domainErrors.NewValidationError("docType", "must be QUOTE or INVOICE")
	}
	if strings.TrimSpace(sub.CustomerName) == "" {
		return domainErrors.NewValidationError("customerName", "must not be empty")
	}
	if email := strings.TrimSpace(sub.CustomerEmail); email == "" || !strings.Contains(email, "@") {
		return domainErrors.NewValidationError("customerEmail", "must contain @")
	}
	if strings.TrimSpace(sub.BillingAddr) == "" {
		return domainErrors.NewValidationError("billingAddr", "must not be empty")
	}
	if strings.TrimSpace(sub.Terms) == "" {
		return domainErrors.NewValidationError("termsAndConditions", "must not be empty")
	}
	if len(sub.Items) == 0 {
		return domainErrors.NewValidationError("items", "at least one line item required")
	}
	for _, item := range sub.Items {
		if strings.TrimSpace(item.Description) == "" {
			return domainErrors.NewValidationError("items.desc", "must not be empty")
		}
		if item.Quantity <= 0 {
			return domainErrors.NewValidationError("items.qty", "must be a positive integer")
		}
		if item.UnitPrice <= 0 {
			return domainErrors.NewValidationError("items.price", "must be positive")
		}
		if item.TaxRatePercent < 0 || item.TaxRatePercent > 100 {
			return domainErrors.NewValidationError("items.taxRate", "must be between 0 and 100")
		}
	}
	if strings.TrimSpace(sub.Currency) == "" {
		return domainErrors.NewValidationError("currency", "must not be empty")
	}
	return nil
}
