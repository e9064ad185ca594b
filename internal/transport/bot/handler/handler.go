package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"rewardbot/internal/config"
	service "rewardbot/internal/domain/service/reward"
	"rewardbot/internal/transport/bot/view"
	"rewardbot/internal/worker"
	"rewardbot/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Handler struct {
	svc     *service.RewardService
	deduper *worker.Deduper
	cfg     config.Bot
}

func New(svc *service.RewardService, deduper *worker.Deduper, cfg config.Bot) *Handler {
	return &Handler{
		svc:     svc,
		deduper: deduper,
		cfg:     cfg,
	}
}

// guard wraps a command handler with the top-level error boundary: anything
// unexpected is logged with context and answered with a generic failure line.
func (h *Handler) guard(next th.MessageHandler) th.MessageHandler {
	return func(ctx *th.Context, msg telego.Message) error {
		if err := next(ctx, msg); err != nil {
			logger(ctx).Error("command failed",
				"chat_id", msg.Chat.ID,
				"text", msg.Text,
				"error", err,
			)

			return h.reply(ctx, msg, view.GenericFailure)
		}

		return nil
	}
}

// reply answers in the chat the message came from, paginating at the
// platform limit.
func (h *Handler) reply(ctx *th.Context, msg telego.Message, text string) error {
	for _, chunk := range view.Paginate(text) {
		if _, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(msg.Chat.ID), chunk)); err != nil {
			return err
		}
	}

	return nil
}
