package model

import "time"

// Review is a 1-5 star rating left by one user for another, optionally
// tied to an item or swap request. Creating a review recomputes the
// target user's average rating.
type Review struct {
	ID            string    `json:"id"`
	FromUserID    string    `json:"from_user_id"`
	ToUserID      string    `json:"to_user_id"`
	ItemID        string    `json:"item_id,omitempty"`
	SwapRequestID string    `json:"swap_request_id,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
}

// Review types.
const (
	ReviewSwap    = "swap"
	ReviewRent    = "rent"
	ReviewGeneral = "general"
)
