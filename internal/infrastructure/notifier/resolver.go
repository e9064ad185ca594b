package notifier

import (
	"context"
	"strconv"
	"time"

	"github.com/mymmrac/telego"
	cache "github.com/patrickmn/go-cache"
)

// Resolver translates user IDs into display names for leaderboards.
// Lookups hit the chat API, so results are cached; a failed lookup falls
// back to the numeric ID instead of failing the caller.
type Resolver struct {
	bot   *telego.Bot
	cache *cache.Cache
}

func NewResolver(bot *telego.Bot) *Resolver {
	return &Resolver{
		bot:   bot,
		cache: cache.New(time.Hour, 2*time.Hour),
	}
}

func (r *Resolver) DisplayName(ctx context.Context, userID int64) string {
	key := strconv.FormatInt(userID, 10)

	if name, ok := r.cache.Get(key); ok {
		return name.(string)
	}

	chat, err := r.bot.GetChat(ctx, &telego.GetChatParams{ChatID: telego.ChatID{ID: userID}})
	if err != nil {
		logger(ctx).Warn("failed to resolve user name", "user_id", userID, "error", err)

		return key
	}

	name := chat.FirstName
	if chat.LastName != "" {
		name += " " + chat.LastName
	}
	if name == "" && chat.Username != "" {
		name = "@" + chat.Username
	}
	if name == "" {
		name = key
	}

	r.cache.Set(key, name, cache.DefaultExpiration)

	return name
}
