package model

import "time"

// ChatMessage is a single message between two users.
type ChatMessage struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
