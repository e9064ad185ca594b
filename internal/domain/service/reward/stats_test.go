package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"rewardbot/internal/domain/entity"
)

func TestStats(t *testing.T) {
	rq := require.New(t)

	env := newTestEnv()
	env.codes = newFakeCodes("AAAA", "BBBB")
	env.svc.codes = env.codes

	_, err := env.items.Insert(context.Background(), entity.KindStorage, "s1")
	rq.NoError(err)
	_, err = env.items.Insert(context.Background(), entity.KindAccount, "a1")
	rq.NoError(err)
	_, err = env.items.Insert(context.Background(), entity.KindAccount, "a2")
	rq.NoError(err)

	rq.NoError(env.links.Insert(context.Background(), "https://sh.example/x"))

	stats, err := env.svc.Stats(context.Background())

	rq.NoError(err)
	rq.Equal(2, stats.PendingCodes)
	rq.Equal(1, stats.IssuedLinks)
	rq.Equal(int64(1), stats.Items[entity.KindStorage])
	rq.Equal(int64(2), stats.Items[entity.KindAccount])
}
