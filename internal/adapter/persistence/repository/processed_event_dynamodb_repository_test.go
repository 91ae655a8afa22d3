package repository

import (
	"context"
	"testing"
)

func TestLedgerTableFromEnv(t *testing.T) {
	t.Run("unset means disabled", func(t *testing.T) {
		t.Setenv("RECONCILER_LEDGER_TABLE", "")
		if got := LedgerTableFromEnv(); got != "" {
			t.Fatalf("expected empty table name, got %q", got)
		}
	})

	t.Run("whitespace means disabled", func(t *testing.T) {
		t.Setenv("RECONCILER_LEDGER_TABLE", "   ")
		if got := LedgerTableFromEnv(); got != "" {
			t.Fatalf("expected empty table name, got %q", got)
		}
	})

	t.Run("configured", func(t *testing.T) {
		t.Setenv("RECONCILER_LEDGER_TABLE", "processed-events")
		if got := LedgerTableFromEnv(); got != "processed-events" {
			t.Fatalf("expected processed-events, got %q", got)
		}
	})
}

func TestNoopProcessedEventStore(t *testing.T) {
	store := NoopProcessedEventStore{}
	for i := 0; i < 3; i++ {
		first, err := store.MarkProcessed(context.Background(), "fp-1")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !first {
			t.Fatal("noop store must report every event as new")
		}
	}
}
