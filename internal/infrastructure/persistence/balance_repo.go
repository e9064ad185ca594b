package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"rewardbot/internal/domain"
	"rewardbot/internal/domain/entity"
	"rewardbot/pkg/errcodes"
	"rewardbot/pkg/lox"
)

type BalanceRepository struct {
	db *sqlx.DB
}

func NewBalanceRepository(db *sqlx.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// Get returns the user's balance, 0 if the user has no row yet.
func (r *BalanceRepository) Get(ctx context.Context, userID int64) (int64, error) {
	var balance int64

	query := `SELECT COALESCE(
		(SELECT balance FROM user_balances WHERE user_id = $1), 0)`

	if err := r.db.GetContext(ctx, &balance, query, userID); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to get balance")
	}

	return balance, nil
}

// Add applies a signed delta as an additive upsert: the row is created at 0
// on first touch. Callers validate that debits do not drive the balance
// negative; the store itself does not.
func (r *BalanceRepository) Add(ctx context.Context, userID int64, delta int64) error {
	query := `
		INSERT INTO user_balances (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = user_balances.balance + EXCLUDED.balance`

	if _, err := r.db.ExecContext(ctx, query, userID, delta); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update balance")
	}

	return nil
}

// Top returns the highest balances, descending.
func (r *BalanceRepository) Top(ctx context.Context, limit int) ([]entity.Balance, error) {
	query := `
		SELECT user_id, balance
		FROM user_balances
		ORDER BY balance DESC
		LIMIT $1`

	var schemas []balanceSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list top balances")
	}

	return lox.Map(schemas, balanceSchema.toDomain), nil
}
