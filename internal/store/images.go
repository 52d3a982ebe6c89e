package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PutImage stores an image blob under a generated id. The blob set is
// bounded: when the insert would exceed the retention count or the total
// byte budget, one eviction pass removes the oldest blobs and the insert
// is retried exactly once. A second failure is surfaced as
// ErrQuotaExceeded and nothing is stored.
func (s *Store) PutImage(ctx context.Context, data []byte, mime string) (string, error) {
	l := s.lock("images")
	l.Lock()
	defer l.Unlock()

	id := "img-" + uuid.NewString()

	err := s.insertImage(ctx, id, data, mime)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, ErrQuotaExceeded) {
		return "", err
	}

	s.log.Warnw("image store over capacity, evicting oldest blobs", "incoming_bytes", len(data))
	if err := s.evictImages(ctx, int64(len(data))); err != nil {
		return "", err
	}
	if err := s.insertImage(ctx, id, data, mime); err != nil {
		return "", err
	}
	return id, nil
}

// insertImage writes the blob if it fits within the configured bounds.
func (s *Store) insertImage(ctx context.Context, id string, data []byte, mime string) error {
	count, total, err := s.imageUsage(ctx)
	if err != nil {
		return err
	}
	if count+1 > s.cfg.MaxImages || total+int64(len(data)) > s.cfg.MaxImageBytes {
		return fmt.Errorf("storing image %s (%d bytes): %w", id, len(data), ErrQuotaExceeded)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO images (id, data, mime) VALUES (?, ?, ?)`,
		id, data, mime,
	)
	if err != nil {
		return fmt.Errorf("storing image %s: %w", id, err)
	}
	return nil
}

// evictImages deletes oldest-first until the incoming blob fits.
func (s *Store) evictImages(ctx context.Context, incoming int64) error {
	for {
		count, total, err := s.imageUsage(ctx)
		if err != nil {
			return err
		}
		if count == 0 || (count+1 <= s.cfg.MaxImages && total+incoming <= s.cfg.MaxImageBytes) {
			return nil
		}

		_, err = s.db.ExecContext(ctx,
			`DELETE FROM images WHERE id = (SELECT id FROM images ORDER BY created_at, id LIMIT 1)`,
		)
		if err != nil {
			return fmt.Errorf("evicting image: %w", err)
		}
	}
}

// imageUsage returns the current blob count and total stored bytes.
func (s *Store) imageUsage(ctx context.Context) (int, int64, error) {
	var count int
	var total sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(LENGTH(data)), 0) FROM images`,
	).Scan(&count, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("reading image usage: %w", err)
	}
	return count, total.Int64, nil
}

// GetImage returns an image blob and its MIME type, or ErrNotFound.
func (s *Store) GetImage(ctx context.Context, id string) ([]byte, string, error) {
	var data []byte
	var mime string
	err := s.db.QueryRowContext(ctx,
		`SELECT data, mime FROM images WHERE id = ?`, id,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", fmt.Errorf("image %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting image %s: %w", id, err)
	}
	return data, mime, nil
}

// DeleteImage removes an image blob. Deleting a missing blob is a no-op.
func (s *Store) DeleteImage(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting image %s: %w", id, err)
	}
	return nil
}
