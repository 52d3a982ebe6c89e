package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sukrititalwar/rewear/internal/model"
)

// CreateItem stores a new listing. The item always enters moderation in
// pending status; id, timestamps and status supplied by the caller are
// overwritten.
func (s *Store) CreateItem(ctx context.Context, item model.Item) (*model.Item, error) {
	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.Status = model.ItemStatusPending
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Images == nil {
		item.Images = []string{}
	}

	err := mutate(ctx, s, colItems, func(items []model.Item) ([]model.Item, error) {
		return append(items, item), nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItem returns an item by id, or ErrNotFound.
func (s *Store) GetItem(ctx context.Context, id string) (*model.Item, error) {
	items, err := readAll[model.Item](ctx, s, colItems)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
}

// ListItems returns all items in insertion order.
func (s *Store) ListItems(ctx context.Context) ([]model.Item, error) {
	return readAll[model.Item](ctx, s, colItems)
}

// ListItemsByUser returns all items owned by a user.
func (s *Store) ListItemsByUser(ctx context.Context, userID string) ([]model.Item, error) {
	items, err := readAll[model.Item](ctx, s, colItems)
	if err != nil {
		return nil, err
	}
	var out []model.Item
	for _, it := range items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

// ListItemsByStatus returns all items with the given moderation status.
func (s *Store) ListItemsByStatus(ctx context.Context, status string) ([]model.Item, error) {
	items, err := readAll[model.Item](ctx, s, colItems)
	if err != nil {
		return nil, err
	}
	var out []model.Item
	for _, it := range items {
		if it.Status == status {
			out = append(out, it)
		}
	}
	return out, nil
}

// ListApprovedItems returns the items eligible for search, similarity,
// suggestion and trending results.
func (s *Store) ListApprovedItems(ctx context.Context) ([]model.Item, error) {
	return s.ListItemsByStatus(ctx, model.ItemStatusApproved)
}

// UpdateItem applies a partial update to an item. Only UpdatedAt and the
// patched fields change; id, owner, status and CreatedAt stay intact.
func (s *Store) UpdateItem(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	var updated *model.Item
	err := mutate(ctx, s, colItems, func(items []model.Item) ([]model.Item, error) {
		for i := range items {
			if items[i].ID == id {
				patch.Apply(&items[i])
				items[i].UpdatedAt = time.Now().UTC()
				updated = &items[i]
				return items, nil
			}
		}
		return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateItemStatus transitions an item's moderation status.
func (s *Store) UpdateItemStatus(ctx context.Context, id, status string) (*model.Item, error) {
	if !model.ValidItemStatus(status) {
		return nil, fmt.Errorf("invalid item status %q", status)
	}

	var updated *model.Item
	err := mutate(ctx, s, colItems, func(items []model.Item) ([]model.Item, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				items[i].UpdatedAt = time.Now().UTC()
				updated = &items[i]
				return items, nil
			}
		}
		return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteItem removes an item.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	return mutate(ctx, s, colItems, func(items []model.Item) ([]model.Item, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
	})
}
