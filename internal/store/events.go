package store

import (
	"context"
	"time"
)

// ledgerEvent records that a point-awarding event id was already
// processed, so re-firing the same logical event never double-pays.
type ledgerEvent struct {
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MarkLedgerEvent records an event id. It returns false when the id was
// already recorded, in which case nothing is written.
func (s *Store) MarkLedgerEvent(ctx context.Context, eventID string) (bool, error) {
	seen := false
	err := mutate(ctx, s, colLedgerEvents, func(events []ledgerEvent) ([]ledgerEvent, error) {
		for _, e := range events {
			if e.EventID == eventID {
				seen = true
				return events, nil
			}
		}
		return append(events, ledgerEvent{EventID: eventID, CreatedAt: time.Now().UTC()}), nil
	})
	if err != nil {
		return false, err
	}
	return !seen, nil
}
