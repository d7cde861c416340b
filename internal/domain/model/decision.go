package model

import (
	"strings"
	"time"
)

// Decision is the counterparty's response captured via the decision link.
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// ParseDecision normalizes a raw decision value to uppercase and reports
// whether it is one of the two accepted values.
func ParseDecision(raw string) (Decision, bool) {
	switch Decision(strings.ToUpper(strings.TrimSpace(raw))) {
	case DecisionApproved:
		return DecisionApproved, true
	case DecisionRejected:
		return DecisionRejected, true
	default:
		return "", false
	}
}

// DecisionEvent is emitted once per document when its decision is first
// observed by the status watcher.
type DecisionEvent struct {
	DocumentID string
	Decision   Decision
	Status     Status
	DecidedAt  time.Time
}
