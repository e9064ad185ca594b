package service

import (
	"context"
	"time"

	"rewardbot/internal/config"
	"rewardbot/internal/domain/entity"
	"rewardbot/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type CodeRepository interface {
	Insert(ctx context.Context, code string) error
	Delete(ctx context.Context, code string) (bool, error)
	List(ctx context.Context) ([]string, error)
}

type BalanceRepository interface {
	Get(ctx context.Context, userID int64) (int64, error)
	Add(ctx context.Context, userID int64, delta int64) error
	Top(ctx context.Context, limit int) ([]entity.Balance, error)
}

type CooldownRepository interface {
	Get(ctx context.Context, userID int64) (time.Time, error)
	Set(ctx context.Context, userID int64, at time.Time) error
}

type ItemRepository interface {
	Insert(ctx context.Context, kind entity.ItemKind, payload string) (bool, error)
	Random(ctx context.Context, kind entity.ItemKind) (*entity.Item, error)
	DeleteByID(ctx context.Context, kind entity.ItemKind, id int64) (bool, error)
	DeleteByPayload(ctx context.Context, kind entity.ItemKind, payload string) (bool, error)
	List(ctx context.Context, kind entity.ItemKind) ([]entity.Item, error)
	Count(ctx context.Context, kind entity.ItemKind) (int64, error)
	Deduplicate(ctx context.Context, kind entity.ItemKind) (before, after int64, err error)
}

type LinkRepository interface {
	Insert(ctx context.Context, url string) error
	List(ctx context.Context) ([]string, error)
}

type PasteClient interface {
	Create(ctx context.Context, title, content string) (string, error)
}

type Shortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

// Courier delivers drawn payloads to the winner's private chat.
type Courier interface {
	DeliverPayload(ctx context.Context, userID int64, payload string) error
}

// NameResolver maps user IDs to display names, best effort.
type NameResolver interface {
	DisplayName(ctx context.Context, userID int64) string
}

type RewardService struct {
	codes     CodeRepository
	balances  BalanceRepository
	cooldowns CooldownRepository
	items     ItemRepository
	links     LinkRepository
	paste     PasteClient
	shortener Shortener
	courier   Courier
	resolver  NameResolver
	sessions  *SessionStore

	economy config.Economy
	ownerID int64

	now func() time.Time
}

func NewRewardService(
	codes CodeRepository,
	balances BalanceRepository,
	cooldowns CooldownRepository,
	items ItemRepository,
	links LinkRepository,
	paste PasteClient,
	shortener Shortener,
	courier Courier,
	resolver NameResolver,
	economy config.Economy,
	ownerID int64,
) *RewardService {
	return &RewardService{
		codes:     codes,
		balances:  balances,
		cooldowns: cooldowns,
		items:     items,
		links:     links,
		paste:     paste,
		shortener: shortener,
		courier:   courier,
		resolver:  resolver,
		sessions:  NewSessionStore(),
		economy:   economy,
		ownerID:   ownerID,
		now:       time.Now,
	}
}

func (s *RewardService) isOwner(userID int64) bool {
	return userID == s.ownerID
}
