package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Bootstrap creates every table the bot uses. All statements are idempotent;
// this is the only schema management there is, run at every startup.
//
// main_link is a legacy table kept for schema compatibility with earlier
// deployments; nothing reads or writes it anymore.
var bootstrapStatements = []string{
	`CREATE TABLE IF NOT EXISTS main_link (
		id BIGSERIAL PRIMARY KEY,
		url TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS redemption_codes (
		code TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS user_balances (
		user_id BIGINT PRIMARY KEY,
		balance BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS user_cooldowns (
		user_id BIGINT PRIMARY KEY,
		last_issued_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS storage_items (
		id BIGSERIAL PRIMARY KEY,
		payload TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS account_items (
		id BIGSERIAL PRIMARY KEY,
		payload TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS paste_links (
		id BIGSERIAL PRIMARY KEY,
		url TEXT NOT NULL UNIQUE
	)`,
}

func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range bootstrapStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return nil
}
