package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sukrititalwar/rewear/internal/model"
)

// CreateNotification appends a notification for a user.
func (s *Store) CreateNotification(ctx context.Context, n model.Notification) (*model.Notification, error) {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()

	err := mutate(ctx, s, colNotifications, func(all []model.Notification) ([]model.Notification, error) {
		return append(all, n), nil
	})
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// NotificationsByUser returns a user's notifications, newest first.
func (s *Store) NotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	all, err := readAll[model.Notification](ctx, s, colNotifications)
	if err != nil {
		return nil, err
	}
	var out []model.Notification
	for _, n := range all {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// MarkNotificationRead flips the read flag of a single notification.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	return mutate(ctx, s, colNotifications, func(all []model.Notification) ([]model.Notification, error) {
		for i := range all {
			if all[i].ID == id {
				all[i].Read = true
				return all, nil
			}
		}
		return nil, fmt.Errorf("notification %s: %w", id, ErrNotFound)
	})
}

// MarkAllNotificationsRead flips the read flag of every notification
// belonging to userID.
func (s *Store) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	return mutate(ctx, s, colNotifications, func(all []model.Notification) ([]model.Notification, error) {
		for i := range all {
			if all[i].UserID == userID {
				all[i].Read = true
			}
		}
		return all, nil
	})
}
