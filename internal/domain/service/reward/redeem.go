package service

import (
	"context"
	"fmt"
	"strings"
)

type RedeemResult struct {
	Redeemed   int
	Invalid    []string
	Reward     int64
	NewBalance int64
}

// Redeem consumes every valid code in the batch, crediting the fixed reward
// per code. The batch is deliberately non-transactional: codes consumed
// before an error stay consumed and their credits stay applied.
func (s *RewardService) Redeem(ctx context.Context, userID int64, codes []string) (RedeemResult, error) {
	result := RedeemResult{Reward: s.economy.CodeReward}

	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}

		deleted, err := s.codes.Delete(ctx, code)
		if err != nil {
			return result, fmt.Errorf("delete code: %w", err)
		}

		if !deleted {
			result.Invalid = append(result.Invalid, code)
			continue
		}

		if err := s.balances.Add(ctx, userID, s.economy.CodeReward); err != nil {
			return result, fmt.Errorf("credit balance: %w", err)
		}

		result.Redeemed++
	}

	balance, err := s.balances.Get(ctx, userID)
	if err != nil {
		return result, fmt.Errorf("get balance: %w", err)
	}

	result.NewBalance = balance

	logger(ctx).Info("codes redeemed",
		"user_id", userID,
		"redeemed", result.Redeemed,
		"invalid", len(result.Invalid),
	)

	return result, nil
}

// RemoveCode discards a pending code without crediting anyone, the admin
// counterpart of redemption. Reports whether the code existed.
func (s *RewardService) RemoveCode(ctx context.Context, code string) (bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return false, nil
	}

	deleted, err := s.codes.Delete(ctx, code)
	if err != nil {
		return false, fmt.Errorf("delete code: %w", err)
	}

	if deleted {
		logger(ctx).Info("code removed", "code", code)
	}

	return deleted, nil
}
