package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"rewardbot/internal/config"
	"rewardbot/internal/transport/bot/handler"
	"rewardbot/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const longPollTimeout = 60

type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler

	cfg config.Bot
}

// New wires the command handlers onto an update long-polling loop. The
// telego client is shared with the delivery courier, so it is created by the
// caller.
func New(ctx context.Context, tgBot *telego.Bot, commandHandler *handler.Handler, cfg config.Bot) (*Bot, error) {
	updates, err := tgBot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}

	botHandler, err := th.NewBotHandler(tgBot, updates)
	if err != nil {
		return nil, fmt.Errorf("create bot handler: %w", err)
	}

	commandHandler.RegisterRoutes(botHandler)

	return &Bot{
		bot:        tgBot,
		botHandler: botHandler,
		cfg:        cfg,
	}, nil
}

// Run publishes the command list, then processes updates until the context
// is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := handler.RegisterCommands(ctx, b.bot, b.cfg.ScopeChatID); err != nil {
		logger(ctx).Error("failed to register commands", "error", err)
	}

	go func() {
		if err := b.botHandler.Start(); err != nil {
			logger(ctx).Error("bot handler stopped", "error", err)
		}
	}()

	logger(ctx).Info("bot started")

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		return fmt.Errorf("stop bot handler: %w", err)
	}

	return nil
}
