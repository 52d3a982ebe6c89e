package model

import "time"

// Follow links a follower to the user they follow. At most one record
// exists per (follower, following) pair.
type Follow struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// WishlistEntry marks an item as saved by a user. At most one record
// exists per (user, item) pair.
type WishlistEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}
