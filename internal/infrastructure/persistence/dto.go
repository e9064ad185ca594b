package persistence

import (
	"rewardbot/internal/domain/entity"
)

// itemSchema maps an inventory row; the table (and therefore the kind) is
// known by the caller.
type itemSchema struct {
	ID      int64  `db:"id"`
	Payload string `db:"payload"`
}

func (s *itemSchema) toDomain(kind entity.ItemKind) *entity.Item {
	return &entity.Item{
		ID:      s.ID,
		Kind:    kind,
		Payload: s.Payload,
	}
}

type balanceSchema struct {
	UserID  int64 `db:"user_id"`
	Balance int64 `db:"balance"`
}

func (s balanceSchema) toDomain() entity.Balance {
	return entity.Balance{
		UserID: s.UserID,
		Amount: s.Balance,
	}
}
