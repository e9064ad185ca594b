package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rewardbot/internal/domain"
	"rewardbot/internal/domain/entity"
	"rewardbot/pkg/errcodes"
	"rewardbot/pkg/lox"
)

// ItemRepository serves both inventory kinds; every query is routed to the
// kind's own table.
type ItemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// tableFor maps a kind to its table. Kinds come from the entity enum, never
// from user input directly, so interpolating the name is safe.
func tableFor(kind entity.ItemKind) (string, error) {
	switch kind {
	case entity.KindStorage:
		return "storage_items", nil
	case entity.KindAccount:
		return "account_items", nil
	}
	return "", domain.NewError(errcodes.InvalidItemKind, fmt.Sprintf("unknown item kind %q", kind))
}

func (r *ItemRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}
	return nil
}

// Insert stores a payload, silently skipping duplicates. Returns whether a
// new row was created.
func (r *ItemRepository) Insert(ctx context.Context, kind entity.ItemKind, payload string) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (payload)
		VALUES ($1)
		ON CONFLICT (payload) DO NOTHING`, table)

	res, err := r.db.ExecContext(ctx, query, payload)
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to insert item")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	return rows > 0, nil
}

// Random picks one row uniformly at random. InventoryEmpty when the table
// has no rows.
func (r *ItemRepository) Random(ctx context.Context, kind entity.ItemKind) (*entity.Item, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, payload FROM %s ORDER BY random() LIMIT 1`, table)

	var schema itemSchema
	if err := r.db.GetContext(ctx, &schema, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.InventoryEmpty, "inventory is empty")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to pick random item")
	}

	return schema.toDomain(kind), nil
}

func (r *ItemRepository) DeleteByID(ctx context.Context, kind entity.ItemKind, id int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	return r.execDelete(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
}

func (r *ItemRepository) DeleteByPayload(ctx context.Context, kind entity.ItemKind, payload string) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	return r.execDelete(ctx, fmt.Sprintf(`DELETE FROM %s WHERE payload = $1`, table), payload)
}

func (r *ItemRepository) List(ctx context.Context, kind entity.ItemKind) ([]entity.Item, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var schemas []itemSchema
	query := fmt.Sprintf(`SELECT id, payload FROM %s ORDER BY id`, table)

	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list items")
	}

	return lox.Map(schemas, func(s itemSchema) entity.Item {
		return *s.toDomain(kind)
	}), nil
}

func (r *ItemRepository) Count(ctx context.Context, kind entity.ItemKind) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count items")
	}

	return count, nil
}

// Deduplicate keeps the lowest-id row per payload and deletes the rest,
// returning the row counts before and after. One transaction per pass; the
// pass is idempotent.
func (r *ItemRepository) Deduplicate(ctx context.Context, kind entity.ItemKind) (before, after int64, err error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, 0, err
	}

	err = r.withTx(ctx, func(tx *sqlx.Tx) error {
		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)

		if err := tx.GetContext(ctx, &before, countQuery); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to count before dedup")
		}

		dedupQuery := fmt.Sprintf(`
			DELETE FROM %s a
			USING %s b
			WHERE a.payload = b.payload AND a.id > b.id`, table, table)

		if _, err := tx.ExecContext(ctx, dedupQuery); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to deduplicate items")
		}

		if err := tx.GetContext(ctx, &after, countQuery); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to count after dedup")
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return before, after, nil
}

func (r *ItemRepository) execDelete(ctx context.Context, query string, arg any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, arg)
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to delete item")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	return rows > 0, nil
}
