package entities

import "github.com/shopspring/decimal"

// ReconciliationOutcome is the per-delivery classification of a webhook.
// Every delivery maps to exactly one outcome; nothing is dropped silently.
//
// Outcomes are transient: no payment-to-order mapping is persisted, the
// order reference is the only join key.

type ReconciliationOutcome string

const (
	OutcomeApplied            ReconciliationOutcome = "applied"
	OutcomeSkippedNotApproved ReconciliationOutcome = "skipped_not_approved"
	OutcomeSkippedAlreadyPaid ReconciliationOutcome = "skipped_already_paid"
	OutcomeFailedUnresolvable ReconciliationOutcome = "failed_unresolvable"
	OutcomeFailedDownstream   ReconciliationOutcome = "failed_downstream"
)

// ReconciliationResult reports what a single delivery did to order state.
type ReconciliationResult struct {
	Outcome ReconciliationOutcome `json:"outcome"`

	OrderID   uint64 `json:"order_id,omitempty"`
	OrderName string `json:"order_name,omitempty"`

	// AppliedAmount is set only for OutcomeApplied with the transaction
	// mutation style: the amount actually credited to the order.
	AppliedAmount *decimal.Decimal `json:"applied_amount,omitempty"`
}

// Retryable reports whether the gateway should redeliver the webhook.
// Only downstream failures are retry-worthy; an unresolvable reference will
// never resolve by retrying and must not be hammered.
func (r ReconciliationResult) Retryable() bool {
	return r.Outcome == OutcomeFailedDownstream
}
