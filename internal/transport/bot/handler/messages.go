package handler

import (
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"rewardbot/internal/domain"
	"rewardbot/internal/transport/bot/view"
	"rewardbot/pkg/errcodes"
)

// Sentinel tokens that close a bulk session instead of being stored.
const (
	sentinelDone   = "done"
	sentinelFinish = "finish"
	sentinelCancel = "cancel"
)

// onPlainMessage routes non-command text into the sender's bulk session.
// Without an active session the message is ignored, so ordinary chat traffic
// never triggers a reply.
func (h *Handler) onPlainMessage(ctx *th.Context, msg telego.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch strings.ToLower(text) {
	case sentinelDone, sentinelFinish:
		result, err := h.svc.FinishBulk(ctx, msg.From.ID)
		if err != nil {
			if domain.HasCode(err, errcodes.SessionNotFound) {
				return nil
			}

			return err
		}

		return h.reply(ctx, msg, view.BulkFlushed(result))
	case sentinelCancel:
		if err := h.svc.CancelBulk(msg.From.ID); err != nil {
			if domain.HasCode(err, errcodes.SessionNotFound) {
				return nil
			}

			return err
		}

		return h.reply(ctx, msg, view.BulkGone)
	}

	if !h.svc.AppendBulk(msg.From.ID, msg.Text) {
		return nil
	}

	// Acknowledge the stored line without flooding the chat with replies.
	h.react(ctx, msg)

	return nil
}

func (h *Handler) react(ctx *th.Context, msg telego.Message) {
	err := ctx.Bot().SetMessageReaction(ctx, &telego.SetMessageReactionParams{
		ChatID:    tu.ID(msg.Chat.ID),
		MessageID: msg.MessageID,
		Reaction: []telego.ReactionType{
			&telego.ReactionTypeEmoji{Type: telego.ReactionEmoji, Emoji: "👍"},
		},
	})
	if err != nil {
		logger(ctx).Warn("failed to react to message", "chat_id", msg.Chat.ID, "error", err)
	}
}
