package interfaces

import "context"

// IProcessedEventStore is the optional idempotency ledger. The baseline
// safeguard against duplicate webhook deliveries is the already-paid check
// on the order itself; a store backed by real persistence narrows the race
// window between reading order status and writing the transaction.
//
// MarkProcessed records the event fingerprint with an atomic check-and-set
// and reports false when the fingerprint was already recorded.
type IProcessedEventStore interface {
	MarkProcessed(ctx context.Context, fingerprint string) (bool, error)
}
