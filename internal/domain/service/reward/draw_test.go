package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"rewardbot/internal/domain"
	"rewardbot/internal/domain/entity"
	"rewardbot/pkg/errcodes"
)

func TestDraw(t *testing.T) {
	t.Run("exact balance is enough", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()
		env.balances.balances[testUserID] = 150
		_, err := env.items.Insert(context.Background(), entity.KindStorage, "payload-1")
		rq.NoError(err)

		item, err := env.svc.Draw(context.Background(), testUserID, entity.KindStorage)

		rq.NoError(err)
		rq.Equal("payload-1", item.Payload)
		rq.Equal([]string{"payload-1"}, env.courier.delivered)
		rq.Equal(int64(0), env.balances.balances[testUserID])
		rq.Empty(env.items.rows[entity.KindStorage])
	})

	t.Run("one unit short is rejected before touching inventory", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()
		env.balances.balances[testUserID] = 149
		_, err := env.items.Insert(context.Background(), entity.KindStorage, "payload-1")
		rq.NoError(err)

		_, err = env.svc.Draw(context.Background(), testUserID, entity.KindStorage)

		balErr, ok := IsInsufficientBalance(err)
		rq.True(ok)
		rq.Equal(int64(149), balErr.Have)
		rq.Equal(int64(150), balErr.Need)

		rq.Equal(int64(149), env.balances.balances[testUserID])
		rq.Len(env.items.rows[entity.KindStorage], 1)
		rq.Empty(env.courier.delivered)
	})

	t.Run("empty inventory takes no action", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()
		env.balances.balances[testUserID] = 500

		_, err := env.svc.Draw(context.Background(), testUserID, entity.KindAccount)

		rq.True(domain.HasCode(err, errcodes.InventoryEmpty))
		rq.Equal(int64(500), env.balances.balances[testUserID])
	})

	t.Run("delivery failure refunds and keeps the row", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()
		env.balances.balances[testUserID] = 300
		env.courier.err = errors.New("recipient unreachable")
		_, err := env.items.Insert(context.Background(), entity.KindStorage, "payload-1")
		rq.NoError(err)

		_, err = env.svc.Draw(context.Background(), testUserID, entity.KindStorage)

		rq.Error(err)
		rq.Equal(int64(300), env.balances.balances[testUserID])
		rq.Len(env.items.rows[entity.KindStorage], 1)
	})

	t.Run("owner draws for free", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()
		_, err := env.items.Insert(context.Background(), entity.KindAccount, "acc:pass")
		rq.NoError(err)

		item, err := env.svc.Draw(context.Background(), testOwnerID, entity.KindAccount)

		rq.NoError(err)
		rq.Equal("acc:pass", item.Payload)
		rq.Equal(int64(0), env.balances.balances[testOwnerID])
		rq.Empty(env.items.rows[entity.KindAccount])
	})
}
