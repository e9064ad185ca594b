package service

import (
	"context"
	"fmt"

	"rewardbot/internal/domain/entity"
)

// ListCodes returns every pending redemption code.
func (s *RewardService) ListCodes(ctx context.Context) ([]string, error) {
	codes, err := s.codes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list codes: %w", err)
	}

	return codes, nil
}

// ListLinks returns every short link issued so far.
func (s *RewardService) ListLinks(ctx context.Context) ([]string, error) {
	links, err := s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	return links, nil
}

type Stats struct {
	PendingCodes int
	IssuedLinks  int
	Items        map[entity.ItemKind]int64
}

// Stats aggregates the operational counters shown by the info command and
// the admin API.
func (s *RewardService) Stats(ctx context.Context) (Stats, error) {
	codes, err := s.codes.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list codes: %w", err)
	}

	links, err := s.links.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list links: %w", err)
	}

	stats := Stats{
		PendingCodes: len(codes),
		IssuedLinks:  len(links),
		Items:        make(map[entity.ItemKind]int64, len(entity.Kinds())),
	}

	for _, kind := range entity.Kinds() {
		count, err := s.items.Count(ctx, kind)
		if err != nil {
			return Stats{}, fmt.Errorf("count %s items: %w", kind, err)
		}

		stats.Items[kind] = count
	}

	return stats, nil
}
