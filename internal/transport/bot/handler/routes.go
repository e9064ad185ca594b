package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"rewardbot/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler) {
	chatGroup := bh.Group(th.AnyMessage())
	chatGroup.Use(middleware.CommandCounter())

	// Distribution commands work from any chat, private dialogs included.
	chatGroup.HandleMessage(h.guard(h.onGetCode), th.CommandEqual("getcode"))
	chatGroup.HandleMessage(h.guard(h.onRedeem), th.CommandEqual("redeem"))
	chatGroup.HandleMessage(h.guard(h.onBalance), th.CommandEqual("balance"))
	chatGroup.HandleMessage(h.guard(h.onTop), th.CommandEqual("top"))
	chatGroup.HandleMessage(h.guard(h.onDraw), th.CommandEqual("draw"))
	chatGroup.HandleMessage(h.guard(h.onInfo), th.CommandEqual("info"))

	// Inventory and balance administration stays with the owner inside the
	// admin chat; the owner may also run it from a private dialog.
	ownerGroup := chatGroup.Group(th.AnyMessage())
	ownerGroup.Use(middleware.AdminChat(h.cfg.AdminChatID, h.cfg.OwnerID))
	ownerGroup.Use(middleware.OwnerOnly(h.cfg.OwnerID))

	ownerGroup.HandleMessage(h.guard(h.onAddItem), th.CommandEqual("additem"))
	ownerGroup.HandleMessage(h.guard(h.onBulkAdd), th.CommandEqual("bulkadd"))
	ownerGroup.HandleMessage(h.guard(h.onDelItem), th.CommandEqual("delitem"))
	ownerGroup.HandleMessage(h.guard(h.onDelCode), th.CommandEqual("delcode"))
	ownerGroup.HandleMessage(h.guard(h.onList), th.CommandEqual("list"))
	ownerGroup.HandleMessage(h.guard(h.onAddCoins), th.CommandEqual("addcoins"))
	ownerGroup.HandleMessage(h.guard(h.onRemoveCoins), th.CommandEqual("removecoins"))
	ownerGroup.HandleMessage(h.guard(h.onDedup), th.CommandEqual("dedup"))
	ownerGroup.HandleMessage(h.guard(h.onSync), th.CommandEqual("sync"))

	// Non-command traffic feeds the bulk-entry sessions.
	chatGroup.HandleMessage(h.guard(h.onPlainMessage), th.Not(th.AnyCommand()))
}
