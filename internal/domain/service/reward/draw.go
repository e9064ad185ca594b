package service

import (
	"context"
	"errors"
	"fmt"

	"rewardbot/internal/domain/entity"
)

// InsufficientBalanceError rejects a draw before any inventory row is
// touched.
type InsufficientBalanceError struct {
	Have int64
	Need int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %d, need %d", e.Have, e.Need)
}

// Draw picks a random inventory row of the given kind, charges the draw cost
// and delivers the payload to the user's private chat. The debit, delivery
// and row deletion are a manual saga: a delivery failure refunds the debit
// and keeps the row. An empty inventory mutates nothing.
func (s *RewardService) Draw(ctx context.Context, userID int64, kind entity.ItemKind) (*entity.Item, error) {
	if !s.isOwner(userID) {
		balance, err := s.balances.Get(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get balance: %w", err)
		}

		if balance < s.economy.DrawCost {
			return nil, &InsufficientBalanceError{Have: balance, Need: s.economy.DrawCost}
		}
	}

	item, err := s.items.Random(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("pick item: %w", err)
	}

	charged := false

	if !s.isOwner(userID) {
		if err := s.balances.Add(ctx, userID, -s.economy.DrawCost); err != nil {
			return nil, fmt.Errorf("debit balance: %w", err)
		}

		charged = true
	}

	if err := s.courier.DeliverPayload(ctx, userID, item.Payload); err != nil {
		// Keep the row available for the next draw and undo the charge.
		if charged {
			s.refund(ctx, userID)
		}

		return nil, fmt.Errorf("deliver payload: %w", err)
	}

	if _, err := s.items.DeleteByID(ctx, kind, item.ID); err != nil {
		// Payload is already in the user's hands; the row can only be
		// removed manually now.
		logger(ctx).Error("failed to delete drawn item",
			"kind", kind, "item_id", item.ID, "error", err)
	}

	logger(ctx).Info("item drawn", "user_id", userID, "kind", kind, "item_id", item.ID)

	return item, nil
}

func (s *RewardService) refund(ctx context.Context, userID int64) {
	if err := s.balances.Add(ctx, userID, s.economy.DrawCost); err != nil {
		logger(ctx).Error("failed to refund draw cost", "user_id", userID, "error", err)
	}
}

// IsInsufficientBalance reports whether err is a draw-cost rejection.
func IsInsufficientBalance(err error) (*InsufficientBalanceError, bool) {
	var balErr *InsufficientBalanceError
	if errors.As(err, &balErr) {
		return balErr, true
	}

	return nil, false
}
