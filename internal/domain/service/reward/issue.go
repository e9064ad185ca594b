package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rewardbot/internal/codegen"
	"rewardbot/internal/domain"
	"rewardbot/pkg/errcodes"
)

// CooldownError reports how long the user still has to wait before the next
// code issuance.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active, %s remaining", e.Remaining.Round(time.Second))
}

// IssueCode runs the issuance saga: cooldown gate, code generation, paste
// upload, code registration, link shortening. A shortener failure deletes the
// just-inserted code so an unredeemable code never stays pending.
func (s *RewardService) IssueCode(ctx context.Context, userID int64) (string, error) {
	if !s.isOwner(userID) {
		if err := s.checkCooldown(ctx, userID); err != nil {
			return "", err
		}
	}

	code, err := codegen.New(s.economy.CodeLength)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}

	pasteURL, err := s.paste.Create(ctx, "code", code)
	if err != nil {
		return "", fmt.Errorf("create paste: %w", err)
	}

	if err := s.codes.Insert(ctx, code); err != nil {
		return "", fmt.Errorf("register code: %w", err)
	}

	shortURL, err := s.shortener.Shorten(ctx, pasteURL)
	if err != nil {
		// The paste is live but unreachable through a short link; drop the
		// code so it cannot be redeemed.
		if _, delErr := s.codes.Delete(ctx, code); delErr != nil {
			logger(ctx).Error("failed to delete code after shortener failure",
				"user_id", userID, "error", delErr)
		}

		return "", fmt.Errorf("shorten link: %w", err)
	}

	if err := s.links.Insert(ctx, shortURL); err != nil {
		logger(ctx).Warn("failed to record issued link", "url", shortURL, "error", err)
	}

	if !s.isOwner(userID) {
		if err := s.cooldowns.Set(ctx, userID, s.now()); err != nil {
			logger(ctx).Error("failed to set cooldown", "user_id", userID, "error", err)
		}
	}

	logger(ctx).Info("code issued", "user_id", userID, "link", shortURL)

	return shortURL, nil
}

func (s *RewardService) checkCooldown(ctx context.Context, userID int64) error {
	last, err := s.cooldowns.Get(ctx, userID)
	if err != nil {
		if domain.HasCode(err, errcodes.NotFound) {
			return nil
		}

		return fmt.Errorf("get cooldown: %w", err)
	}

	elapsed := s.now().Sub(last)
	if elapsed < s.economy.IssueCooldown {
		return &CooldownError{Remaining: s.economy.IssueCooldown - elapsed}
	}

	return nil
}

// IsCooldownError reports whether err is an issuance cooldown rejection.
func IsCooldownError(err error) (*CooldownError, bool) {
	var cdErr *CooldownError
	if errors.As(err, &cdErr) {
		return cdErr, true
	}

	return nil, false
}
