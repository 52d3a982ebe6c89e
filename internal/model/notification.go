package model

import "time"

// Notification is an append-only message to a user. Only the read flag
// is ever mutated after creation.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	ActionURL string    `json:"action_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification types.
const (
	NotificationSwap   = "swap"
	NotificationRent   = "rent"
	NotificationRedeem = "redeem"
	NotificationFollow = "follow"
	NotificationReview = "review"
	NotificationSystem = "system"
	NotificationChat   = "chat"
)
