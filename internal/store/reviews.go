package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sukrititalwar/rewear/internal/model"
)

// CreateReview stores a review and immediately recomputes the target
// user's average rating, keeping user.Rating equal to the rounded mean
// of all ratings received.
func (s *Store) CreateReview(ctx context.Context, review model.Review) (*model.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("rating %d out of range 1-5", review.Rating)
	}

	review.ID = uuid.NewString()
	review.CreatedAt = time.Now().UTC()

	err := mutate(ctx, s, colReviews, func(reviews []model.Review) ([]model.Review, error) {
		return append(reviews, review), nil
	})
	if err != nil {
		return nil, err
	}

	rating, err := s.AverageRating(ctx, review.ToUserID)
	if err != nil {
		return nil, err
	}
	if _, err := s.UpdateUser(ctx, review.ToUserID, model.UserPatch{Rating: &rating}); err != nil {
		return nil, fmt.Errorf("updating rating for %s: %w", review.ToUserID, err)
	}

	return &review, nil
}

// AverageRating returns the mean of all ratings received by a user,
// rounded to one decimal. Users with no reviews rate the default 5.0.
func (s *Store) AverageRating(ctx context.Context, userID string) (float64, error) {
	reviews, err := s.ReviewsForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return model.DefaultRating, nil
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10, nil
}

// ReviewsForUser returns the reviews received by a user.
func (s *Store) ReviewsForUser(ctx context.Context, userID string) ([]model.Review, error) {
	reviews, err := readAll[model.Review](ctx, s, colReviews)
	if err != nil {
		return nil, err
	}
	var out []model.Review
	for _, r := range reviews {
		if r.ToUserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ReviewsForItem returns the reviews tied to an item.
func (s *Store) ReviewsForItem(ctx context.Context, itemID string) ([]model.Review, error) {
	reviews, err := readAll[model.Review](ctx, s, colReviews)
	if err != nil {
		return nil, err
	}
	var out []model.Review
	for _, r := range reviews {
		if r.ItemID == itemID {
			out = append(out, r)
		}
	}
	return out, nil
}
