package handler

import (
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"rewardbot/internal/domain"
	"rewardbot/internal/domain/entity"
	service "rewardbot/internal/domain/service/reward"
	"rewardbot/internal/transport/bot/view"
	"rewardbot/pkg/errcodes"
)

func (h *Handler) onGetCode(ctx *th.Context, msg telego.Message) error {
	link, err := h.svc.IssueCode(ctx, msg.From.ID)
	if err != nil {
		if cdErr, ok := service.IsCooldownError(err); ok {
			return h.reply(ctx, msg, view.CooldownWait(cdErr))
		}

		return err
	}

	return h.reply(ctx, msg, view.CodeIssued(link))
}

func (h *Handler) onRedeem(ctx *th.Context, msg telego.Message) error {
	codes := commandLines(msg.Text)
	if len(codes) == 0 {
		return h.reply(ctx, msg, view.RedeemUsage)
	}

	result, err := h.svc.Redeem(ctx, msg.From.ID, codes)
	if err != nil {
		return err
	}

	return h.reply(ctx, msg, view.RedeemReport(result))
}

func (h *Handler) onBalance(ctx *th.Context, msg telego.Message) error {
	balance, err := h.svc.Balance(ctx, msg.From.ID)
	if err != nil {
		return err
	}

	return h.reply(ctx, msg, view.BalanceReport(balance))
}

func (h *Handler) onTop(ctx *th.Context, msg telego.Message) error {
	rows, err := h.svc.Leaderboard(ctx, 10)
	if err != nil {
		return err
	}

	return h.reply(ctx, msg, view.Leaderboard(rows))
}

func (h *Handler) onDraw(ctx *th.Context, msg telego.Message) error {
	kind, err := drawKind(commandArgs(msg.Text))
	if err != nil {
		return h.reply(ctx, msg, view.UnknownKind)
	}

	item, err := h.svc.Draw(ctx, msg.From.ID, kind)
	if err != nil {
		if balErr, ok := service.IsInsufficientBalance(err); ok {
			return h.reply(ctx, msg, view.InsufficientBalance(balErr))
		}

		if domain.HasCode(err, errcodes.InventoryEmpty) {
			return h.reply(ctx, msg, view.InventoryEmptyMessage)
		}

		if domain.HasCode(err, errcodes.DeliveryFailed) {
			return h.reply(ctx, msg, view.DeliveryFailedMessage)
		}

		return err
	}

	return h.reply(ctx, msg, view.DrawDelivered(item.Kind))
}

func (h *Handler) onInfo(ctx *th.Context, msg telego.Message) error {
	stats, err := h.svc.Stats(ctx)
	if err != nil {
		return err
	}

	return h.reply(ctx, msg, view.InfoReport(stats))
}

// drawKind picks the inventory kind for a draw, defaulting to storage when
// the command carries no argument.
func drawKind(args []string) (entity.ItemKind, error) {
	if len(args) == 0 {
		return entity.KindStorage, nil
	}

	return entity.ParseItemKind(args[0])
}

// commandArgs splits the first line of a command message into its arguments.
func commandArgs(text string) []string {
	firstLine, _, _ := strings.Cut(text, "\n")

	fields := strings.Fields(firstLine)
	if len(fields) == 0 {
		return nil
	}

	return fields[1:]
}

// commandLines collects the command's inline argument plus every following
// non-empty line, the batch form of redemption.
func commandLines(text string) []string {
	var lines []string

	for i, line := range strings.Split(text, "\n") {
		if i == 0 {
			args := commandArgs(line)
			if len(args) > 0 {
				lines = append(lines, args[0])
			}

			continue
		}

		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
