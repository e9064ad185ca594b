package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"rewardbot/internal/domain"
	"rewardbot/pkg/errcodes"
)

// LinkRepository records every paste URL the issuance workflow creates, so
// admins can audit outstanding links.
type LinkRepository struct {
	db *sqlx.DB
}

func NewLinkRepository(db *sqlx.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Insert(ctx context.Context, url string) error {
	query := `
		INSERT INTO paste_links (url)
		VALUES ($1)
		ON CONFLICT (url) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, url); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert paste link")
	}

	return nil
}

func (r *LinkRepository) List(ctx context.Context) ([]string, error) {
	var urls []string
	if err := r.db.SelectContext(ctx, &urls, `SELECT url FROM paste_links ORDER BY id`); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list paste links")
	}

	return urls, nil
}
