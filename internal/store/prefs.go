package store

import (
	"context"

	"github.com/sukrititalwar/rewear/internal/model"
)

// GetPrefs returns a user's accessibility preferences, or zero-value
// defaults when none have been saved.
func (s *Store) GetPrefs(ctx context.Context, userID string) (*model.AccessibilityPrefs, error) {
	prefs, err := readAll[model.AccessibilityPrefs](ctx, s, colPrefs)
	if err != nil {
		return nil, err
	}
	for i := range prefs {
		if prefs[i].UserID == userID {
			return &prefs[i], nil
		}
	}
	return &model.AccessibilityPrefs{UserID: userID}, nil
}

// SetPrefs stores a user's accessibility preferences, replacing any
// previous record.
func (s *Store) SetPrefs(ctx context.Context, p model.AccessibilityPrefs) error {
	return mutate(ctx, s, colPrefs, func(prefs []model.AccessibilityPrefs) ([]model.AccessibilityPrefs, error) {
		for i := range prefs {
			if prefs[i].UserID == p.UserID {
				prefs[i] = p
				return prefs, nil
			}
		}
		return append(prefs, p), nil
	})
}
