package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sukrititalwar/rewear/internal/model"
)

// CreateUser stores a new member. New users start at the default rating
// with zero swaps.
func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash, role string) (*model.User, error) {
	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Role:         role,
		Rating:       model.DefaultRating,
		CreatedAt:    time.Now().UTC(),
	}

	err := mutate(ctx, s, colUsers, func(users []model.User) ([]model.User, error) {
		for _, u := range users {
			if u.Email == user.Email {
				return nil, fmt.Errorf("email %s already registered", user.Email)
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser returns a user by id, or ErrNotFound.
func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	users, err := readAll[model.User](ctx, s, colUsers)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
}

// GetUserByEmail returns a user by email (case-insensitive), or ErrNotFound.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := readAll[model.User](ctx, s, colUsers)
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(email)
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
}

// ListUsers returns all users.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	return readAll[model.User](ctx, s, colUsers)
}

// UserRatings returns owner ratings keyed by user id, for rating-based
// search filters and sorts.
func (s *Store) UserRatings(ctx context.Context) (map[string]float64, error) {
	users, err := readAll[model.User](ctx, s, colUsers)
	if err != nil {
		return nil, err
	}
	ratings := make(map[string]float64, len(users))
	for _, u := range users {
		ratings[u.ID] = u.Rating
	}
	return ratings, nil
}

// UpdateUser applies a partial profile update.
func (s *Store) UpdateUser(ctx context.Context, id string, patch model.UserPatch) (*model.User, error) {
	var updated *model.User
	err := mutate(ctx, s, colUsers, func(users []model.User) ([]model.User, error) {
		for i := range users {
			if users[i].ID == id {
				patch.Apply(&users[i])
				updated = &users[i]
				return users, nil
			}
		}
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
