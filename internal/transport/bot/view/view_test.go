package view_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rewardbot/internal/domain/entity"
	service "rewardbot/internal/domain/service/reward"
	"rewardbot/internal/transport/bot/view"
)

func TestRedeemReport(t *testing.T) {
	rq := require.New(t)

	text := view.RedeemReport(service.RedeemResult{
		Redeemed:   2,
		Invalid:    []string{"NOPE"},
		Reward:     150,
		NewBalance: 300,
	})

	rq.Contains(text, "Redeemed 2 code(s) for 150 coins each.")
	rq.Contains(text, "NOPE")
	rq.Contains(text, "Your balance: 300")
}

func TestCooldownWait(t *testing.T) {
	rq := require.New(t)

	text := view.CooldownWait(&service.CooldownError{Remaining: 290*time.Second + 400*time.Millisecond})

	rq.Contains(text, "4m50s")
}

func TestLeaderboard(t *testing.T) {
	rq := require.New(t)

	text := view.Leaderboard([]service.LeaderboardRow{
		{UserID: 7, Name: "Alice", Amount: 900},
		{UserID: 8, Name: "8", Amount: 100},
	})

	rq.Equal("Top balances:\n1. Alice: 900\n2. 8: 100", text)

	rq.Equal(view.NothingStored, view.Leaderboard(nil))
}

func TestItemList(t *testing.T) {
	rq := require.New(t)

	text := view.ItemList([]entity.Item{
		{ID: 3, Kind: entity.KindStorage, Payload: "a"},
		{ID: 9, Kind: entity.KindStorage, Payload: "b"},
	})

	rq.Equal("3. a\n9. b", text)
}

func TestPaginate(t *testing.T) {
	rq := require.New(t)

	long := strings.Repeat("payload line\n", 1000)

	chunks := view.Paginate(long)

	rq.Greater(len(chunks), 1)

	for _, chunk := range chunks {
		rq.LessOrEqual(len(chunk), view.MessageLimit)
	}
}
