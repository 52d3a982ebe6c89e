package store

import (
	"context"
	"testing"
)

func TestConversationBothDirections(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AppendChatMessage(ctx, "a", "b", "hey, is the jacket still available?")
	s.AppendChatMessage(ctx, "b", "a", "yes! want to swap?")
	s.AppendChatMessage(ctx, "a", "c", "unrelated thread")

	msgs, err := s.Conversation(ctx, "a", "b")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].FromUserID != "a" || msgs[1].FromUserID != "b" {
		t.Errorf("expected oldest-first transcript, got %+v", msgs)
	}

	// Symmetric regardless of argument order.
	flipped, _ := s.Conversation(ctx, "b", "a")
	if len(flipped) != 2 {
		t.Errorf("expected same transcript from either side, got %d messages", len(flipped))
	}
}
