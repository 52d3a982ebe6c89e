package store

import (
	"context"
	"testing"
)

func TestMarkLedgerEventDeduplicates(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	fresh, err := s.MarkLedgerEvent(ctx, "daily-login:user-1:2026-08-31")
	if err != nil {
		t.Fatalf("MarkLedgerEvent: %v", err)
	}
	if !fresh {
		t.Error("expected first marking to be fresh")
	}

	fresh, err = s.MarkLedgerEvent(ctx, "daily-login:user-1:2026-08-31")
	if err != nil {
		t.Fatalf("MarkLedgerEvent replay: %v", err)
	}
	if fresh {
		t.Error("expected replayed event id to be seen")
	}

	// Different event ids are independent.
	fresh, _ = s.MarkLedgerEvent(ctx, "daily-login:user-1:2026-09-01")
	if !fresh {
		t.Error("expected a new event id to be fresh")
	}
}
