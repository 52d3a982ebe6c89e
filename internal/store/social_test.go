package store

import (
	"context"
	"testing"
)

func TestFollowDuplicateIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.Follow(ctx, "a", "b")
	if err != nil {
		t.Fatalf("Follow: %v", err)
	}
	second, err := s.Follow(ctx, "a", "b")
	if err != nil {
		t.Fatalf("duplicate Follow: %v", err)
	}
	if second.ID != first.ID {
		t.Error("expected duplicate follow to return the existing relation")
	}

	followers, _ := s.Followers(ctx, "b")
	if len(followers) != 1 {
		t.Errorf("expected 1 follower, got %d", len(followers))
	}
}

func TestSelfFollowRejected(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.Follow(context.Background(), "a", "a"); err == nil {
		t.Error("expected self-follow to be rejected")
	}
}

func TestUnfollow(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Follow(ctx, "a", "b")
	if err := s.Unfollow(ctx, "a", "b"); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}
	if err := s.Unfollow(ctx, "a", "b"); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound on missing relation, got %v", err)
	}
}

func TestFollowersAndFollowing(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Follow(ctx, "a", "b")
	s.Follow(ctx, "c", "b")
	s.Follow(ctx, "b", "a")

	followers, _ := s.Followers(ctx, "b")
	if len(followers) != 2 {
		t.Errorf("expected 2 followers of b, got %d", len(followers))
	}
	following, _ := s.Following(ctx, "b")
	if len(following) != 1 || following[0].FollowingID != "a" {
		t.Errorf("expected b to follow only a, got %+v", following)
	}
}

func TestWishlistIdempotentAdd(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.AddToWishlist(ctx, "user-1", "item-1")
	if err != nil {
		t.Fatalf("AddToWishlist: %v", err)
	}
	second, err := s.AddToWishlist(ctx, "user-1", "item-1")
	if err != nil {
		t.Fatalf("duplicate AddToWishlist: %v", err)
	}
	if second.ID != first.ID {
		t.Error("expected duplicate add to return the existing entry")
	}

	entries, _ := s.WishlistByUser(ctx, "user-1")
	if len(entries) != 1 {
		t.Errorf("expected 1 wishlist entry, got %d", len(entries))
	}
}

func TestWishlistRemove(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToWishlist(ctx, "user-1", "item-1")
	if err := s.RemoveFromWishlist(ctx, "user-1", "item-1"); err != nil {
		t.Fatalf("RemoveFromWishlist: %v", err)
	}
	if err := s.RemoveFromWishlist(ctx, "user-1", "item-1"); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	in, _ := s.InWishlist(ctx, "user-1", "item-1")
	if in {
		t.Error("expected item to be out of the wishlist")
	}
}
