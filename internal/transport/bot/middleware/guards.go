package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

const deniedMessage = "You are not allowed to do that."

// OwnerOnly passes updates from the owner and answers everyone else with a
// fixed denial line, before any workflow code runs.
func OwnerOnly(ownerID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		userID, chatID, ok := updateOrigin(update)
		if !ok {
			return nil
		}

		if userID == ownerID {
			return ctx.Next(update)
		}

		_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), deniedMessage))

		return err
	}
}

// AdminChat restricts updates to the admin chat. The owner bypasses the
// restriction so administration stays usable from a private dialog.
func AdminChat(adminChatID, ownerID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		userID, chatID, ok := updateOrigin(update)
		if !ok {
			return nil
		}

		if adminChatAllowed(userID, chatID, adminChatID, ownerID) {
			return ctx.Next(update)
		}

		_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), deniedMessage))

		return err
	}
}

// adminChatAllowed holds the gate decision: the owner from anywhere, anyone
// else only inside the admin chat. A private dialog's chat ID equals the
// sender's user ID, so it never matches the admin group.
func adminChatAllowed(userID, chatID, adminChatID, ownerID int64) bool {
	return userID == ownerID || chatID == adminChatID
}

func updateOrigin(update telego.Update) (userID, chatID int64, ok bool) {
	if update.Message != nil && update.Message.From != nil {
		return update.Message.From.ID, update.Message.Chat.ID, true
	}

	return 0, 0, false
}
