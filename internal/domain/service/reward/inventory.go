package service

import (
	"context"
	"fmt"
	"strings"

	"rewardbot/internal/domain/entity"
)

type FlushResult struct {
	Kind    entity.ItemKind
	Added   int
	Skipped int
	Errored int
}

// AddItem stores one payload, reporting false when an identical payload
// already exists for the kind.
func (s *RewardService) AddItem(ctx context.Context, kind entity.ItemKind, payload string) (bool, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return false, nil
	}

	added, err := s.items.Insert(ctx, kind, payload)
	if err != nil {
		return false, fmt.Errorf("insert item: %w", err)
	}

	return added, nil
}

func (s *RewardService) ListItems(ctx context.Context, kind entity.ItemKind) ([]entity.Item, error) {
	items, err := s.items.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}

func (s *RewardService) CountItems(ctx context.Context, kind entity.ItemKind) (int64, error) {
	count, err := s.items.Count(ctx, kind)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}

	return count, nil
}

func (s *RewardService) DeleteItemByID(ctx context.Context, kind entity.ItemKind, id int64) (bool, error) {
	deleted, err := s.items.DeleteByID(ctx, kind, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}

	return deleted, nil
}

func (s *RewardService) DeleteItemByPayload(ctx context.Context, kind entity.ItemKind, payload string) (bool, error) {
	deleted, err := s.items.DeleteByPayload(ctx, kind, payload)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}

	return deleted, nil
}

// Deduplicate keeps the lowest-id row per distinct payload and reports
// before/after row counts.
func (s *RewardService) Deduplicate(ctx context.Context, kind entity.ItemKind) (before, after int64, err error) {
	before, after, err = s.items.Deduplicate(ctx, kind)
	if err != nil {
		return 0, 0, fmt.Errorf("deduplicate %s items: %w", kind, err)
	}

	logger(ctx).Info("inventory deduplicated",
		"kind", kind, "before", before, "after", after)

	return before, after, nil
}

// StartBulk opens a bulk-entry session for the user.
func (s *RewardService) StartBulk(userID int64, kind entity.ItemKind) error {
	return s.sessions.Start(userID, kind)
}

// AppendBulk buffers one payload line, reporting whether the user had an
// active session.
func (s *RewardService) AppendBulk(userID int64, line string) bool {
	return s.sessions.Append(userID, line)
}

// CancelBulk discards the user's session without storing anything.
func (s *RewardService) CancelBulk(userID int64) error {
	return s.sessions.Cancel(userID)
}

// FinishBulk flushes the user's buffered payloads through the same
// insert-ignore rule as single adds.
func (s *RewardService) FinishBulk(ctx context.Context, userID int64) (FlushResult, error) {
	kind, lines, err := s.sessions.Finish(userID)
	if err != nil {
		return FlushResult{}, err
	}

	result := FlushResult{Kind: kind}

	for _, line := range lines {
		added, err := s.AddItem(ctx, kind, line)
		if err != nil {
			logger(ctx).Error("failed to flush bulk line", "kind", kind, "error", err)
			result.Errored++

			continue
		}

		if added {
			result.Added++
		} else {
			result.Skipped++
		}
	}

	logger(ctx).Info("bulk session flushed",
		"user_id", userID,
		"kind", kind,
		"added", result.Added,
		"skipped", result.Skipped,
		"errored", result.Errored,
	)

	return result, nil
}
