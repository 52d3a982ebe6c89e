package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sukrititalwar/rewear/internal/model"
)

// AddToWishlist saves an item for a user. Saving the same item twice is
// a no-op success: at most one entry exists per (user, item) pair.
func (s *Store) AddToWishlist(ctx context.Context, userID, itemID string) (*model.WishlistEntry, error) {
	entry := model.WishlistEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		ItemID:    itemID,
		CreatedAt: time.Now().UTC(),
	}

	err := mutate(ctx, s, colWishlists, func(entries []model.WishlistEntry) ([]model.WishlistEntry, error) {
		for _, e := range entries {
			if e.UserID == userID && e.ItemID == itemID {
				entry = e
				return entries, nil
			}
		}
		return append(entries, entry), nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveFromWishlist deletes a saved entry, or ErrNotFound.
func (s *Store) RemoveFromWishlist(ctx context.Context, userID, itemID string) error {
	return mutate(ctx, s, colWishlists, func(entries []model.WishlistEntry) ([]model.WishlistEntry, error) {
		for i, e := range entries {
			if e.UserID == userID && e.ItemID == itemID {
				return append(entries[:i], entries[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("wishlist entry %s/%s: %w", userID, itemID, ErrNotFound)
	})
}

// WishlistByUser returns a user's saved entries.
func (s *Store) WishlistByUser(ctx context.Context, userID string) ([]model.WishlistEntry, error) {
	entries, err := readAll[model.WishlistEntry](ctx, s, colWishlists)
	if err != nil {
		return nil, err
	}
	var out []model.WishlistEntry
	for _, e := range entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// InWishlist reports whether the user has saved the item.
func (s *Store) InWishlist(ctx context.Context, userID, itemID string) (bool, error) {
	entries, err := s.WishlistByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}
