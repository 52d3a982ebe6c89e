package store

import (
	"database/sql"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a record id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrQuotaExceeded is returned when a write would push a collection
	// or the image set past the configured capacity. The record was not
	// persisted.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrInsufficientPoints is returned by point deductions that would
	// leave a negative balance.
	ErrInsufficientPoints = errors.New("insufficient point balance")
)

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Defaults for the storage medium capacity.
const (
	DefaultMaxCollectionBytes = 4 << 20  // per serialized collection
	DefaultMaxImageBytes      = 32 << 20 // total across all image blobs
	DefaultMaxImages          = 50       // retained blobs, oldest evicted first
)

// Config bounds the storage medium.
type Config struct {
	MaxCollectionBytes int64
	MaxImageBytes      int64
	MaxImages          int
}

// Store provides whole-collection read-modify-write access to the named
// record collections. Every mutation re-reads the collection, applies
// the change and rewrites the full document under a per-collection lock,
// so two logically concurrent writers can never clobber each other.
type Store struct {
	db  *sql.DB
	log *zap.SugaredLogger
	cfg Config

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store over the given database. Zero config fields fall
// back to the defaults.
func New(db *sql.DB, log *zap.SugaredLogger, cfg Config) *Store {
	if cfg.MaxCollectionBytes <= 0 {
		cfg.MaxCollectionBytes = DefaultMaxCollectionBytes
	}
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = DefaultMaxImageBytes
	}
	if cfg.MaxImages <= 0 {
		cfg.MaxImages = DefaultMaxImages
	}
	return &Store{
		db:    db,
		log:   log,
		cfg:   cfg,
		locks: map[string]*sync.Mutex{},
	}
}

// lock returns the write lock for a collection, creating it on first use.
func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}
