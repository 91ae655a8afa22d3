package entities

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// NormalizedStatus classifies the status string discovered inside a gateway
// webhook payload.
//
// Domain notes:
//   - EfiPay does not keep its webhook schema stable across versions, so the
//     status is discovered by scanning the payload tree, not by a typed field.
//   - Any status string outside the approved vocabulary is NotApproved;
//     a payload with no status key anywhere is Unknown.

type NormalizedStatus string

const (
	StatusApproved    NormalizedStatus = "approved"
	StatusNotApproved NormalizedStatus = "not_approved"
	StatusUnknown     NormalizedStatus = "unknown"
)

// PaymentEvent is the canonical, gateway-shape-independent representation of
// a webhook delivery.
//
// RawPayload keeps the original body (JSON) for traceability/audit; different
// EfiPay versions vary in schema so the raw form is the only stable record.
type PaymentEvent struct {
	Status    NormalizedStatus `json:"status"`
	RawStatus string           `json:"raw_status,omitempty"`

	// Amount is the gateway-reported amount; nil when the payload carried
	// no usable amount field.
	Amount *decimal.Decimal `json:"amount,omitempty"`

	// OrderReference is the merchant-supplied order identifier echoed back
	// by the gateway; empty when nothing resolvable was found.
	OrderReference string `json:"order_reference,omitempty"`

	// ReferenceSource names the extraction rule that produced
	// OrderReference (structured field vs free-text fallback).
	ReferenceSource string `json:"reference_source,omitempty"`

	// Malformed marks a body that could not be parsed as JSON; the event is
	// then derived from an empty object rather than rejected.
	Malformed bool `json:"malformed,omitempty"`

	RawPayload json.RawMessage `json:"raw_payload,omitempty"`
}

func (e PaymentEvent) IsApproved() bool {
	return e.Status == StatusApproved
}
