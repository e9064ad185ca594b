package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedeem(t *testing.T) {
	t.Run("credits once per valid code", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()
		env.codes = newFakeCodes("AAAA", "BBBB")
		env.svc.codes = env.codes

		result, err := env.svc.Redeem(context.Background(), testUserID, []string{"AAAA", "BBBB", "NOPE"})

		rq.NoError(err)
		rq.Equal(2, result.Redeemed)
		rq.Equal([]string{"NOPE"}, result.Invalid)
		rq.Equal(int64(300), result.NewBalance)
	})

	t.Run("a code can only be redeemed once", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()
		env.codes = newFakeCodes("AAAA")
		env.svc.codes = env.codes

		first, err := env.svc.Redeem(context.Background(), testUserID, []string{"AAAA"})
		rq.NoError(err)
		rq.Equal(1, first.Redeemed)

		second, err := env.svc.Redeem(context.Background(), testUserID, []string{"AAAA"})
		rq.NoError(err)
		rq.Equal(0, second.Redeemed)
		rq.Equal([]string{"AAAA"}, second.Invalid)
		rq.Equal(int64(150), second.NewBalance)
	})

	t.Run("skips blank lines in a batch", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()
		env.codes = newFakeCodes("AAAA")
		env.svc.codes = env.codes

		result, err := env.svc.Redeem(context.Background(), testUserID, []string{"", "  AAAA  ", "   "})

		rq.NoError(err)
		rq.Equal(1, result.Redeemed)
		rq.Empty(result.Invalid)
	})
}

func TestRemoveCode(t *testing.T) {
	t.Run("pending code is discarded without credit", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()
		env.codes = newFakeCodes("AAAA")
		env.svc.codes = env.codes

		removed, err := env.svc.RemoveCode(context.Background(), " AAAA ")

		rq.NoError(err)
		rq.True(removed)
		rq.Empty(env.codes.codes)

		// The code is gone for redeemers too.
		result, err := env.svc.Redeem(context.Background(), testUserID, []string{"AAAA"})
		rq.NoError(err)
		rq.Equal(0, result.Redeemed)
		rq.Equal(int64(0), result.NewBalance)
	})

	t.Run("unknown code reports not found", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()

		removed, err := env.svc.RemoveCode(context.Background(), "NOPE")

		rq.NoError(err)
		rq.False(removed)
	})

	t.Run("blank input removes nothing", func(t *testing.T) {
		rq := require.New(t)

		env := newTestEnv()
		env.codes = newFakeCodes("AAAA")
		env.svc.codes = env.codes

		removed, err := env.svc.RemoveCode(context.Background(), "   ")

		rq.NoError(err)
		rq.False(removed)
		rq.Len(env.codes.codes, 1)
	})
}
