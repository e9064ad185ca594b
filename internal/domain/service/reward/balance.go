package service

import (
	"context"
	"fmt"

	"rewardbot/internal/domain"
	"rewardbot/pkg/errcodes"
)

type LeaderboardRow struct {
	UserID int64
	Name   string
	Amount int64
}

func (s *RewardService) Balance(ctx context.Context, userID int64) (int64, error) {
	balance, err := s.balances.Get(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}

	return balance, nil
}

// AdjustBalance applies a signed admin adjustment. Debits that would drive
// the balance negative are rejected without touching the row.
func (s *RewardService) AdjustBalance(ctx context.Context, userID int64, delta int64) (int64, error) {
	if delta == 0 {
		return 0, domain.NewError(errcodes.InvalidAmount, "adjustment amount must be non-zero")
	}

	balance, err := s.balances.Get(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}

	if balance+delta < 0 {
		return 0, domain.NewError(errcodes.InsufficientBalance,
			fmt.Sprintf("cannot debit %d from balance %d", -delta, balance))
	}

	if err := s.balances.Add(ctx, userID, delta); err != nil {
		return 0, fmt.Errorf("adjust balance: %w", err)
	}

	logger(ctx).Info("balance adjusted", "user_id", userID, "delta", delta)

	return balance + delta, nil
}

// Leaderboard returns the top holders by balance, resolving display names
// best effort.
func (s *RewardService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	top, err := s.balances.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get top balances: %w", err)
	}

	rows := make([]LeaderboardRow, 0, len(top))
	for _, b := range top {
		rows = append(rows, LeaderboardRow{
			UserID: b.UserID,
			Name:   s.resolver.DisplayName(ctx, b.UserID),
			Amount: b.Amount,
		})
	}

	return rows, nil
}
