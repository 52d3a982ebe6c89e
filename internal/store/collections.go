package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Collection names. These are the stable keys of the storage medium;
// renaming one orphans existing data.
const (
	colItems         = "items"
	colUsers         = "users"
	colFollows       = "follows"
	colWishlists     = "wishlists"
	colNotifications = "notifications"
	colReviews       = "reviews"
	colChatMessages  = "chat-messages"
	colSwapRequests  = "swap-requests"
	colPrefs         = "accessibility-prefs"
	colLedgerEvents  = "ledger-events"
	colRevokedTokens = "revoked-tokens"
)

// readAll deserializes the entire named collection. A missing collection
// is an empty one. Malformed stored JSON is also treated as empty, with
// a logged warning, so a corrupt document degrades to data loss for that
// collection instead of a crash.
func readAll[T any](ctx context.Context, s *Store, name string) ([]T, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, name,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading collection %q: %w", name, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Warnw("malformed collection, treating as empty",
			"collection", name, "error", err)
		return nil, nil
	}
	return records, nil
}

// writeAll reserializes the entire collection and writes it back. Writes
// exceeding the configured capacity fail with ErrQuotaExceeded before
// touching the medium, so the stored document is never truncated.
func writeAll[T any](ctx context.Context, s *Store, name string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serializing collection %q: %w", name, err)
	}
	if int64(len(data)) > s.cfg.MaxCollectionBytes {
		return fmt.Errorf("writing collection %q (%d bytes): %w", name, len(data), ErrQuotaExceeded)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("writing collection %q: %w", name, err)
	}
	return nil
}

// mutate runs fn over a fresh read of the collection and writes the
// result back, all under the collection's write lock. fn returning an
// error aborts the write.
func mutate[T any](ctx context.Context, s *Store, name string, fn func([]T) ([]T, error)) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()

	records, err := readAll[T](ctx, s, name)
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return writeAll(ctx, s, name, updated)
}
