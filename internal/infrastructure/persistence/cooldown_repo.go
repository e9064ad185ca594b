package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"rewardbot/internal/domain"
	"rewardbot/pkg/errcodes"
)

type CooldownRepository struct {
	db *sqlx.DB
}

func NewCooldownRepository(db *sqlx.DB) *CooldownRepository {
	return &CooldownRepository{db: db}
}

// Get returns the user's last issuance time. NotFound means the user has
// never issued a code.
func (r *CooldownRepository) Get(ctx context.Context, userID int64) (time.Time, error) {
	var lastIssuedAt time.Time

	query := `SELECT last_issued_at FROM user_cooldowns WHERE user_id = $1`

	if err := r.db.GetContext(ctx, &lastIssuedAt, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, domain.NewError(errcodes.NotFound, "no cooldown recorded")
		}
		return time.Time{}, domain.WrapError(err, errcodes.InternalServerError, "failed to get cooldown")
	}

	return lastIssuedAt.UTC(), nil
}

// Set replaces the user's last issuance timestamp.
func (r *CooldownRepository) Set(ctx context.Context, userID int64, at time.Time) error {
	query := `
		INSERT INTO user_cooldowns (user_id, last_issued_at)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET last_issued_at = EXCLUDED.last_issued_at`

	if _, err := r.db.ExecContext(ctx, query, userID, at.UTC()); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to set cooldown")
	}

	return nil
}
