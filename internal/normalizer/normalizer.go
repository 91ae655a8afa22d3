package normalizer

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"efipay-shopify-bridge/internal/domain/entities"
)

// DefaultApprovedStatuses is the vocabulary of gateway status strings that
// mean a completed payment. EfiPay mixes English and Spanish spellings
// depending on version; matching is case-insensitive.
var DefaultApprovedStatuses = []string{
	"approved", "aprobado", "paid", "pagado", "success", "succeeded",
}

// Normalizer turns an arbitrary EfiPay webhook body into a canonical
// PaymentEvent. It is a pure function of the body: no I/O, no side effects.

type Normalizer struct {
	approved map[string]struct{}
}

// New builds a Normalizer with the given approved-status vocabulary.
// A nil or empty list falls back to DefaultApprovedStatuses.
func New(approvedStatuses []string) *Normalizer {
	if len(approvedStatuses) == 0 {
		approvedStatuses = DefaultApprovedStatuses
	}
	approved := make(map[string]struct{}, len(approvedStatuses))
	for _, s := range approvedStatuses {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			approved[s] = struct{}{}
		}
	}
	return &Normalizer{approved: approved}
}

// FromEnv builds a Normalizer from APPROVED_STATUSES (comma-separated),
// defaulting to DefaultApprovedStatuses when unset. New gateway spellings are
// config, not code.
func FromEnv() *Normalizer {
	raw := strings.TrimSpace(os.Getenv("APPROVED_STATUSES"))
	if raw == "" {
		return New(nil)
	}
	return New(strings.Split(raw, ","))
}

// IsApproved reports whether a raw status string is in the approved
// vocabulary, case-insensitively.
func (n *Normalizer) IsApproved(rawStatus string) bool {
	_, ok := n.approved[strings.ToLower(strings.TrimSpace(rawStatus))]
	return ok
}

// Normalize derives the canonical event from a webhook body.
//
// The body may be a JSON object or a JSON-encoded string wrapping one
// (EfiPay double-encodes on some delivery paths). Anything unparseable
// degrades to an empty object: the resulting event is Unknown/empty and
// flagged Malformed, never a hard failure.
func (n *Normalizer) Normalize(body []byte) entities.PaymentEvent {
	ev := entities.PaymentEvent{
		Status:     entities.StatusUnknown,
		RawPayload: json.RawMessage(body),
	}

	root, err := parseTree(body)
	if err != nil {
		log.Printf("[webhook][normalizer] body not parseable as json, falling back to empty event err=%v", err)
		ev.Malformed = true
		return ev
	}

	if root.kind == kindString {
		inner, err := parseTree([]byte(root.str))
		if err != nil {
			log.Printf("[webhook][normalizer] string body not parseable as json, falling back to empty event err=%v", err)
			ev.Malformed = true
			return ev
		}
		root = inner
	}

	if rawStatus, ok := findRawStatus(root); ok {
		ev.RawStatus = rawStatus
		if n.IsApproved(rawStatus) {
			ev.Status = entities.StatusApproved
		} else {
			ev.Status = entities.StatusNotApproved
		}
	}

	ev.Amount = findAmount(root)
	ev.OrderReference, ev.ReferenceSource = findReference(root)

	return ev
}
