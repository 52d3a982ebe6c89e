package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sukrititalwar/rewear/internal/model"
)

// Follow records that follower follows following. Following someone
// twice is a no-op success: the (follower, following) pair is unique.
func (s *Store) Follow(ctx context.Context, followerID, followingID string) (*model.Follow, error) {
	if followerID == followingID {
		return nil, fmt.Errorf("user %s cannot follow themselves", followerID)
	}

	follow := model.Follow{
		ID:          uuid.NewString(),
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	}

	err := mutate(ctx, s, colFollows, func(follows []model.Follow) ([]model.Follow, error) {
		for _, f := range follows {
			if f.FollowerID == followerID && f.FollowingID == followingID {
				follow = f
				return follows, nil
			}
		}
		return append(follows, follow), nil
	})
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

// Unfollow removes a follow relation. Removing a relation that does not
// exist returns ErrNotFound.
func (s *Store) Unfollow(ctx context.Context, followerID, followingID string) error {
	return mutate(ctx, s, colFollows, func(follows []model.Follow) ([]model.Follow, error) {
		for i, f := range follows {
			if f.FollowerID == followerID && f.FollowingID == followingID {
				return append(follows[:i], follows[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("follow %s -> %s: %w", followerID, followingID, ErrNotFound)
	})
}

// Followers returns the relations where userID is being followed.
func (s *Store) Followers(ctx context.Context, userID string) ([]model.Follow, error) {
	follows, err := readAll[model.Follow](ctx, s, colFollows)
	if err != nil {
		return nil, err
	}
	var out []model.Follow
	for _, f := range follows {
		if f.FollowingID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

// Following returns the relations where userID is the follower.
func (s *Store) Following(ctx context.Context, userID string) ([]model.Follow, error) {
	follows, err := readAll[model.Follow](ctx, s, colFollows)
	if err != nil {
		return nil, err
	}
	var out []model.Follow
	for _, f := range follows {
		if f.FollowerID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}
