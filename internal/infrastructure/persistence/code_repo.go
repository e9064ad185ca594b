package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"rewardbot/internal/domain"
	"rewardbot/pkg/errcodes"
)

type CodeRepository struct {
	db *sqlx.DB
}

func NewCodeRepository(db *sqlx.DB) *CodeRepository {
	return &CodeRepository{db: db}
}

// Insert stores a freshly generated code. A collision with an existing code
// is reported as CodeAlreadyExists so the issuance workflow can abort.
func (r *CodeRepository) Insert(ctx context.Context, code string) error {
	query := `
		INSERT INTO redemption_codes (code)
		VALUES ($1)
		ON CONFLICT (code) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, code)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert code")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	if rows == 0 {
		return domain.NewError(errcodes.CodeAlreadyExists, "code already exists")
	}

	return nil
}

// Delete removes a code, returning whether it existed. Redemption and the
// issuance compensating delete both go through here.
func (r *CodeRepository) Delete(ctx context.Context, code string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM redemption_codes WHERE code = $1`, code)
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to delete code")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	return rows > 0, nil
}

func (r *CodeRepository) List(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.SelectContext(ctx, &codes, `SELECT code FROM redemption_codes ORDER BY code`); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list codes")
	}

	return codes, nil
}
