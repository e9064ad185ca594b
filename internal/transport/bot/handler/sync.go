package handler

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// RegisterCommands publishes the command list to the platform. With a scope
// chat configured the list is registered only there, keeping test
// deployments out of the global command menu.
func RegisterCommands(ctx context.Context, bot *telego.Bot, scopeChatID int64) error {
	params := &telego.SetMyCommandsParams{
		Commands: []telego.BotCommand{
			{Command: "getcode", Description: "Get a reward code link"},
			{Command: "redeem", Description: "Exchange a code for coins"},
			{Command: "balance", Description: "Show your coin balance"},
			{Command: "top", Description: "Coin leaderboard"},
			{Command: "draw", Description: "Spend coins on a random item"},
			{Command: "list", Description: "List stored entries"},
			{Command: "additem", Description: "Store one item"},
			{Command: "bulkadd", Description: "Start a bulk entry session"},
			{Command: "delitem", Description: "Remove an item"},
		{Command: "delcode", Description: "Remove a pending redemption code"},
			{Command: "addcoins", Description: "Credit coins"},
			{Command: "removecoins", Description: "Debit coins"},
			{Command: "dedup", Description: "Remove duplicate items"},
			{Command: "sync", Description: "Re-register the command list"},
			{Command: "info", Description: "Show help and counters"},
		},
	}

	if scopeChatID != 0 {
		params.Scope = &telego.BotCommandScopeChat{
			Type:   telego.ScopeTypeChat,
			ChatID: tu.ID(scopeChatID),
		}
	}

	if err := bot.SetMyCommands(ctx, params); err != nil {
		return fmt.Errorf("set my commands: %w", err)
	}

	return nil
}
