package response

import "efipay-shopify-bridge/internal/domain/entities"

// WebhookAckResponse is the acknowledgment sent back to the gateway. Only
// boolean-ish signals cross the wire; the internal outcome classification
// stays in the logs.
type WebhookAckResponse struct {
	OK          bool `json:"ok"`
	Approved    bool `json:"approved"`
	AlreadyPaid bool `json:"alreadyPaid,omitempty"`
}

func FromReconciliation(res entities.ReconciliationResult) WebhookAckResponse {
	switch res.Outcome {
	case entities.OutcomeApplied:
		return WebhookAckResponse{OK: true, Approved: true}
	case entities.OutcomeSkippedAlreadyPaid:
		return WebhookAckResponse{OK: true, Approved: true, AlreadyPaid: true}
	case entities.OutcomeFailedUnresolvable:
		// Acked so the gateway stops retrying a reference that will never
		// resolve; approved=true reflects what the gateway reported.
		return WebhookAckResponse{OK: true, Approved: true}
	default:
		return WebhookAckResponse{OK: true, Approved: false}
	}
}
