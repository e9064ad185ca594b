package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"rewardbot/internal/domain"
	"rewardbot/internal/domain/entity"
	"rewardbot/internal/transport/bot/view"
	"rewardbot/internal/worker"
	"rewardbot/pkg/errcodes"
)

func (h *Handler) onAddItem(ctx *th.Context, msg telego.Message) error {
	kind, payload, err := kindAndRest(msg.Text)
	if err != nil || payload == "" {
		return h.reply(ctx, msg, view.AddItemUsage)
	}

	added, err := h.svc.AddItem(ctx, kind, payload)
	if err != nil {
		return err
	}

	return h.reply(ctx, msg, view.ItemAdded(added))
}

func (h *Handler) onBulkAdd(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)
	if len(args) < 1 {
		return h.reply(ctx, msg, view.BulkAddUsage)
	}

	kind, err := entity.ParseItemKind(args[0])
	if err != nil {
		return h.reply(ctx, msg, view.UnknownKind)
	}

	if err := h.svc.StartBulk(msg.From.ID, kind); err != nil {
		if domain.HasCode(err, errcodes.SessionAlreadyActive) {
			return h.reply(ctx, msg, view.BulkActive)
		}

		return err
	}

	return h.reply(ctx, msg, view.BulkStarted)
}

func (h *Handler) onDelItem(ctx *th.Context, msg telego.Message) error {
	kind, arg, err := kindAndRest(msg.Text)
	if err != nil || arg == "" {
		return h.reply(ctx, msg, view.DelItemUsage)
	}

	var deleted bool

	if id, parseErr := strconv.ParseInt(arg, 10, 64); parseErr == nil {
		deleted, err = h.svc.DeleteItemByID(ctx, kind, id)
	} else {
		deleted, err = h.svc.DeleteItemByPayload(ctx, kind, arg)
	}

	if err != nil {
		return err
	}

	return h.reply(ctx, msg, view.ItemDeleted(deleted))
}

func (h *Handler) onDelCode(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)
	if len(args) < 1 {
		return h.reply(ctx, msg, view.DelCodeUsage)
	}

	removed, err := h.svc.RemoveCode(ctx, args[0])
	if err != nil {
		return err
	}

	return h.reply(ctx, msg, view.CodeRemoved(removed))
}

func (h *Handler) onList(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)
	if len(args) < 1 {
		return h.reply(ctx, msg, view.ListUsage)
	}

	switch strings.ToLower(args[0]) {
	case "code":
		codes, err := h.svc.ListCodes(ctx)
		if err != nil {
			return err
		}

		return h.reply(ctx, msg, view.StringList(codes))
	case "link":
		links, err := h.svc.ListLinks(ctx)
		if err != nil {
			return err
		}

		return h.reply(ctx, msg, view.StringList(links))
	}

	kind, err := entity.ParseItemKind(args[0])
	if err != nil {
		return h.reply(ctx, msg, view.ListUsage)
	}

	items, err := h.svc.ListItems(ctx, kind)
	if err != nil {
		return err
	}

	return h.reply(ctx, msg, view.ItemList(items))
}

func (h *Handler) onAddCoins(ctx *th.Context, msg telego.Message) error {
	return h.adjustCoins(ctx, msg, "/addcoins", 1)
}

func (h *Handler) onRemoveCoins(ctx *th.Context, msg telego.Message) error {
	return h.adjustCoins(ctx, msg, "/removecoins", -1)
}

func (h *Handler) adjustCoins(ctx *th.Context, msg telego.Message, command string, sign int64) error {
	args := commandArgs(msg.Text)
	if len(args) < 2 {
		return h.reply(ctx, msg, fmt.Sprintf(view.CoinsUsage, command))
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return h.reply(ctx, msg, fmt.Sprintf(view.CoinsUsage, command))
	}

	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || amount <= 0 {
		return h.reply(ctx, msg, fmt.Sprintf(view.CoinsUsage, command))
	}

	newBalance, err := h.svc.AdjustBalance(ctx, userID, sign*amount)
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			return h.reply(ctx, msg, appErr.Message)
		}

		return err
	}

	return h.reply(ctx, msg, view.AdjustDone(userID, sign*amount, newBalance))
}

func (h *Handler) onDedup(ctx *th.Context, msg telego.Message) error {
	args := commandArgs(msg.Text)

	// With an explicit kind only that table is rewritten; without one the
	// full startup pass runs again.
	if len(args) >= 1 {
		kind, err := entity.ParseItemKind(args[0])
		if err != nil {
			return h.reply(ctx, msg, view.DedupUsage)
		}

		before, after, err := h.svc.Deduplicate(ctx, kind)
		if err != nil {
			return err
		}

		return h.reply(ctx, msg, view.DedupReports([]worker.DedupReport{{
			Kind:    kind,
			Before:  before,
			After:   after,
			Removed: before - after,
		}}))
	}

	reports, err := h.deduper.Run(ctx)
	if err != nil {
		if errors.Is(err, worker.ErrDedupRunning) {
			return h.reply(ctx, msg, view.DedupRunning)
		}

		return err
	}

	return h.reply(ctx, msg, view.DedupReports(reports))
}

func (h *Handler) onSync(ctx *th.Context, msg telego.Message) error {
	if err := RegisterCommands(ctx, ctx.Bot(), h.cfg.ScopeChatID); err != nil {
		return err
	}

	return h.reply(ctx, msg, view.SyncDone)
}

// kindAndRest parses "<command> <kind> <rest...>", keeping the rest verbatim
// so payloads may contain spaces and line breaks.
func kindAndRest(text string) (entity.ItemKind, string, error) {
	text = strings.TrimSpace(text)

	_, rest, found := strings.Cut(text, " ")
	if !found {
		return "", "", errors.New("missing kind argument")
	}

	rest = strings.TrimSpace(rest)

	kindArg, payload, _ := cutAny(rest, " \n")

	kind, err := entity.ParseItemKind(kindArg)
	if err != nil {
		return "", "", err
	}

	return kind, strings.TrimSpace(payload), nil
}

// cutAny cuts s at the first occurrence of any rune from seps.
func cutAny(s, seps string) (before, after string, found bool) {
	if i := strings.IndexAny(s, seps); i >= 0 {
		return s[:i], s[i+1:], true
	}

	return s, "", false
}
