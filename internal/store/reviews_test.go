package store

import (
	"context"
	"testing"

	"github.com/sukrititalwar/rewear/internal/model"
)

func TestCreateReviewRecomputesRating(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	target, _ := s.CreateUser(ctx, "maya", "maya@example.com", "hash", model.RoleUser)

	for _, rating := range []int{4, 5} {
		_, err := s.CreateReview(ctx, model.Review{
			FromUserID: "reviewer",
			ToUserID:   target.ID,
			Rating:     rating,
			Type:       model.ReviewGeneral,
		})
		if err != nil {
			t.Fatalf("CreateReview(%d): %v", rating, err)
		}
	}

	got, _ := s.GetUser(ctx, target.ID)
	if got.Rating != 4.5 {
		t.Errorf("expected rating 4.5 after [4 5], got %.1f", got.Rating)
	}

	s.CreateReview(ctx, model.Review{FromUserID: "reviewer", ToUserID: target.ID, Rating: 3})
	got, _ = s.GetUser(ctx, target.ID)
	if got.Rating != 4.0 {
		t.Errorf("expected rating 4.0 after [4 5 3], got %.1f", got.Rating)
	}
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		if _, err := s.CreateReview(ctx, model.Review{ToUserID: "u", Rating: rating}); err == nil {
			t.Errorf("expected rating %d to be rejected", rating)
		}
	}
}

func TestAverageRatingDefault(t *testing.T) {
	s, _ := newTestStore(t)

	rating, err := s.AverageRating(context.Background(), "unreviewed")
	if err != nil {
		t.Fatalf("AverageRating: %v", err)
	}
	if rating != model.DefaultRating {
		t.Errorf("expected default rating %.1f, got %.1f", model.DefaultRating, rating)
	}
}

func TestReviewsForItem(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.CreateUser(ctx, "maya", "maya@example.com", "hash", model.RoleUser)
	target, _ := s.CreateUser(ctx, "arjun", "arjun@example.com", "hash", model.RoleUser)

	s.CreateReview(ctx, model.Review{FromUserID: "x", ToUserID: target.ID, ItemID: "item-1", Rating: 5})
	s.CreateReview(ctx, model.Review{FromUserID: "x", ToUserID: target.ID, ItemID: "item-2", Rating: 4})

	reviews, err := s.ReviewsForItem(ctx, "item-1")
	if err != nil {
		t.Fatalf("ReviewsForItem: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Rating != 5 {
		t.Errorf("expected one 5-star review for item-1, got %+v", reviews)
	}
}
