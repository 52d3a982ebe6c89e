package store

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sukrititalwar/rewear/internal/model"
)

// AppendChatMessage stores a new chat message.
func (s *Store) AppendChatMessage(ctx context.Context, fromUserID, toUserID, message string) (*model.ChatMessage, error) {
	msg := model.ChatMessage{
		ID:         uuid.NewString(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}

	err := mutate(ctx, s, colChatMessages, func(msgs []model.ChatMessage) ([]model.ChatMessage, error) {
		return append(msgs, msg), nil
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// Conversation returns the transcript between two users, oldest first.
func (s *Store) Conversation(ctx context.Context, userA, userB string) ([]model.ChatMessage, error) {
	msgs, err := readAll[model.ChatMessage](ctx, s, colChatMessages)
	if err != nil {
		return nil, err
	}
	var out []model.ChatMessage
	for _, m := range msgs {
		if (m.FromUserID == userA && m.ToUserID == userB) ||
			(m.FromUserID == userB && m.ToUserID == userA) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
