package store

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/db"
)

func TestPutAndGetImage(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	blob := []byte("fake jpeg bytes")
	id, err := s.PutImage(ctx, blob, "image/jpeg")
	if err != nil {
		t.Fatalf("PutImage: %v", err)
	}

	data, mime, err := s.GetImage(ctx, id)
	if err != nil {
		t.Fatalf("GetImage: %v", err)
	}
	if !bytes.Equal(data, blob) {
		t.Error("expected stored bytes back")
	}
	if mime != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %q", mime)
	}
}

func TestPutImageEvictsOldest(t *testing.T) {
	database := db.NewTestDB(t)
	s := New(database, zap.NewNop().Sugar(), Config{MaxImages: 2})
	ctx := context.Background()

	first, _ := s.PutImage(ctx, []byte("one"), "image/jpeg")
	second, _ := s.PutImage(ctx, []byte("two"), "image/jpeg")

	// Pin distinct ages so oldest-first eviction is deterministic.
	database.ExecContext(ctx, `UPDATE images SET created_at = datetime('now', '-2 minutes') WHERE id = ?`, first)
	database.ExecContext(ctx, `UPDATE images SET created_at = datetime('now', '-1 minutes') WHERE id = ?`, second)

	// Third upload is over the retention count; the oldest blob goes.
	third, err := s.PutImage(ctx, []byte("three"), "image/jpeg")
	if err != nil {
		t.Fatalf("PutImage over capacity: %v", err)
	}

	if _, _, err := s.GetImage(ctx, first); !IsNotFound(err) {
		t.Errorf("expected oldest image evicted, got %v", err)
	}
	for _, id := range []string{second, third} {
		if _, _, err := s.GetImage(ctx, id); err != nil {
			t.Errorf("expected image %s retained: %v", id, err)
		}
	}
}

func TestPutImageByteBudgetExceeded(t *testing.T) {
	database := db.NewTestDB(t)
	s := New(database, zap.NewNop().Sugar(), Config{MaxImageBytes: 10})
	ctx := context.Background()

	// A single blob over the whole budget cannot fit even after eviction.
	_, err := s.PutImage(ctx, bytes.Repeat([]byte("x"), 20), "image/jpeg")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestDeleteImageNoOpOnMissing(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.DeleteImage(context.Background(), "missing"); err != nil {
		t.Errorf("expected no-op delete, got %v", err)
	}
}
