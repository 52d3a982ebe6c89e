package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sukrititalwar/rewear/internal/model"
)

// CreateSwapRequest stores a new swap offer in pending status.
func (s *Store) CreateSwapRequest(ctx context.Context, req model.SwapRequest) (*model.SwapRequest, error) {
	now := time.Now().UTC()
	req.ID = uuid.NewString()
	req.Status = model.SwapStatusPending
	req.CreatedAt = now
	req.UpdatedAt = now

	err := mutate(ctx, s, colSwapRequests, func(reqs []model.SwapRequest) ([]model.SwapRequest, error) {
		return append(reqs, req), nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetSwapRequest returns a swap request by id, or ErrNotFound.
func (s *Store) GetSwapRequest(ctx context.Context, id string) (*model.SwapRequest, error) {
	reqs, err := readAll[model.SwapRequest](ctx, s, colSwapRequests)
	if err != nil {
		return nil, err
	}
	for i := range reqs {
		if reqs[i].ID == id {
			return &reqs[i], nil
		}
	}
	return nil, fmt.Errorf("swap request %s: %w", id, ErrNotFound)
}

// SwapRequestsByUser returns the requests a user sent or received.
func (s *Store) SwapRequestsByUser(ctx context.Context, userID string) ([]model.SwapRequest, error) {
	reqs, err := readAll[model.SwapRequest](ctx, s, colSwapRequests)
	if err != nil {
		return nil, err
	}
	var out []model.SwapRequest
	for _, r := range reqs {
		if r.FromUserID == userID || r.ToUserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// UpdateSwapRequestStatus transitions a swap request.
func (s *Store) UpdateSwapRequestStatus(ctx context.Context, id, status string) (*model.SwapRequest, error) {
	if !model.ValidSwapStatus(status) {
		return nil, fmt.Errorf("invalid swap status %q", status)
	}

	var updated *model.SwapRequest
	err := mutate(ctx, s, colSwapRequests, func(reqs []model.SwapRequest) ([]model.SwapRequest, error) {
		for i := range reqs {
			if reqs[i].ID == id {
				reqs[i].Status = status
				reqs[i].UpdatedAt = time.Now().UTC()
				updated = &reqs[i]
				return reqs, nil
			}
		}
		return nil, fmt.Errorf("swap request %s: %w", id, ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
