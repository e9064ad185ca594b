package persistence_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"rewardbot/internal/domain"
	"rewardbot/internal/domain/entity"
	"rewardbot/internal/infrastructure/persistence"
	"rewardbot/pkg/dbtest"
	"rewardbot/pkg/errcodes"
	"rewardbot/pkg/tests"
)

var random = tests.NewRandomizer() //nolint:gochecknoglobals

// connect opens the database named by TEST_POSTGRES_DSN and applies the
// schema. Without the variable the whole file is skipped, so the suite
// stays runnable without infrastructure.
func connect(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, dbtest.MigrateFromFile(db, "../../../migrations/001_init.sql"))

	return db
}

func TestCodeRepository(t *testing.T) {
	rq := require.New(t)

	db := connect(t)
	repo := persistence.NewCodeRepository(db)
	ctx := context.Background()

	code := fmt.Sprintf("ITEST%d", random.Int63())

	rq.NoError(repo.Insert(ctx, code))

	// A duplicate insert is a distinct error, not a silent overwrite.
	err := repo.Insert(ctx, code)
	rq.True(domain.HasCode(err, errcodes.CodeAlreadyExists))

	deleted, err := repo.Delete(ctx, code)
	rq.NoError(err)
	rq.True(deleted)

	deleted, err = repo.Delete(ctx, code)
	rq.NoError(err)
	rq.False(deleted)
}

func TestBalanceRepository(t *testing.T) {
	rq := require.New(t)

	db := connect(t)
	repo := persistence.NewBalanceRepository(db)
	ctx := context.Background()

	userID := random.Int63()

	balance, err := repo.Get(ctx, userID)
	rq.NoError(err)
	rq.Equal(int64(0), balance)

	rq.NoError(repo.Add(ctx, userID, 150))
	rq.NoError(repo.Add(ctx, userID, -50))

	balance, err = repo.Get(ctx, userID)
	rq.NoError(err)
	rq.Equal(int64(100), balance)
}

func TestCooldownRepository(t *testing.T) {
	rq := require.New(t)

	db := connect(t)
	repo := persistence.NewCooldownRepository(db)
	ctx := context.Background()

	userID := random.Int63()

	_, err := repo.Get(ctx, userID)
	rq.True(domain.HasCode(err, errcodes.NotFound))

	at := time.Now().UTC().Truncate(time.Second)
	rq.NoError(repo.Set(ctx, userID, at))

	got, err := repo.Get(ctx, userID)
	rq.NoError(err)
	rq.True(at.Equal(got.UTC()))

	// Set overwrites, the table keeps one row per user.
	later := at.Add(time.Minute)
	rq.NoError(repo.Set(ctx, userID, later))

	got, err = repo.Get(ctx, userID)
	rq.NoError(err)
	rq.True(later.Equal(got.UTC()))
}

func TestItemRepositoryDeduplicate(t *testing.T) {
	rq := require.New(t)

	db := connect(t)
	repo := persistence.NewItemRepository(db)
	ctx := context.Background()

	payload := fmt.Sprintf("itest-payload-%d", random.Int63())

	added, err := repo.Insert(ctx, entity.KindStorage, payload)
	rq.NoError(err)
	rq.True(added)

	added, err = repo.Insert(ctx, entity.KindStorage, payload)
	rq.NoError(err)
	rq.False(added)

	before, after, err := repo.Deduplicate(ctx, entity.KindStorage)
	rq.NoError(err)
	rq.Equal(before, after) // unique constraint already keeps the table clean

	deleted, err := repo.DeleteByPayload(ctx, entity.KindStorage, payload)
	rq.NoError(err)
	rq.True(deleted)
}
