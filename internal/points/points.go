// Package points implements the fixed-table point ledger. Every award or
// deduction also appends a notification to the affected user.
package points

import (
	"context"
	"fmt"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/store"
)

// Action keys.
const (
	ActionSuccessfulSwap   = "successful-swap"
	ActionItemListed       = "item-listed"
	ActionProfileCompleted = "profile-completed"
	ActionFirstReview      = "first-review"
	ActionWashBeforeGiving = "wash-before-giving"
	ActionDailyLogin       = "daily-login"
)

// actionValues is the fixed action -> points table.
var actionValues = map[string]int{
	ActionSuccessfulSwap:   10,
	ActionItemListed:       5,
	ActionProfileCompleted: 20,
	ActionFirstReview:      15,
	ActionWashBeforeGiving: 5,
	ActionDailyLogin:       2,
}

// Value returns the point value of an action, or 0 for unknown actions.
func Value(action string) int {
	return actionValues[action]
}

// Ledger awards and deducts point balances.
type Ledger struct {
	store *store.Store
}

// NewLedger creates a ledger over the given store.
func NewLedger(s *store.Store) *Ledger {
	return &Ledger{store: s}
}

// Award adds the action's table value to the user's balance and appends
// a notification. Awarding to an unknown user is a silent no-op. Award
// itself is not idempotent; callers that may re-fire the same logical
// event should use AwardOnce.
func (l *Ledger) Award(ctx context.Context, userID, action, reason string) error {
	value, ok := actionValues[action]
	if !ok {
		return fmt.Errorf("unknown point action %q", action)
	}

	user, err := l.store.GetUser(ctx, userID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil
		}
		return err
	}

	balance := user.Points + value
	if _, err := l.store.UpdateUser(ctx, userID, model.UserPatch{Points: &balance}); err != nil {
		return err
	}

	_, err = l.store.CreateNotification(ctx, model.Notification{
		UserID:  userID,
		Title:   "Points Earned!",
		Message: fmt.Sprintf("You earned %d points for %s", value, reason),
		Type:    model.NotificationSystem,
	})
	return err
}

// AwardOnce awards an action at most once per event id. Replaying the
// same event id is a no-op success.
func (l *Ledger) AwardOnce(ctx context.Context, userID, action, eventID, reason string) error {
	fresh, err := l.store.MarkLedgerEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if !fresh {
		return nil
	}
	return l.Award(ctx, userID, action, reason)
}

// Deduct subtracts points from a user's balance and appends a
// notification. It fails without mutation when the user is missing or
// the balance is insufficient: a balance can never go negative.
func (l *Ledger) Deduct(ctx context.Context, userID string, value int, reason string) error {
	user, err := l.store.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.Points < value {
		return fmt.Errorf("deducting %d from balance %d: %w", value, user.Points, store.ErrInsufficientPoints)
	}

	balance := user.Points - value
	if _, err := l.store.UpdateUser(ctx, userID, model.UserPatch{Points: &balance}); err != nil {
		return err
	}

	_, err = l.store.CreateNotification(ctx, model.Notification{
		UserID:  userID,
		Title:   "Points Used",
		Message: fmt.Sprintf("You used %d points for %s", value, reason),
		Type:    model.NotificationSystem,
	})
	return err
}
