// Package view holds the texts and formatting helpers for bot replies.
package view

import (
	"fmt"
	"strings"
	"time"

	"rewardbot/internal/domain/entity"
	service "rewardbot/internal/domain/service/reward"
	"rewardbot/internal/worker"
	"rewardbot/pkg/textx"
)

// MessageLimit is the platform's per-message text limit.
const MessageLimit = 4096

const (
	GenericFailure = "Something went wrong. Please try again later."

	RedeemUsage   = "Usage: /redeem <code>, or put one code per line after the command."
	AddItemUsage  = "Usage: /additem <storage|account> <payload>"
	BulkAddUsage  = "Usage: /bulkadd <storage|account>"
	DelItemUsage  = "Usage: /delitem <storage|account> <id|payload>"
	DelCodeUsage  = "Usage: /delcode <code>"
	CoinsUsage    = "Usage: %s <user_id> <amount>"
	ListUsage     = "Usage: /list <code|link|storage|account>"
	DedupUsage    = "Usage: /dedup <storage|account>"
	UnknownKind   = "Unknown kind, expected storage or account."
	NothingStored = "Nothing stored yet."

	InventoryEmptyMessage = "The inventory is empty, come back later."
	DeliveryFailedMessage = "Could not reach you in private messages. Your coins were not spent: start a dialog with the bot and try again."

	BulkStarted = "Bulk session started. Send one payload per message; finish with \"done\" or discard with \"cancel\"."
	BulkActive  = "You already have an active bulk session. Finish or cancel it first."
	BulkGone    = "Bulk session cancelled, nothing was stored."

	SyncDone     = "Command list re-registered."
	DedupRunning = "A deduplication pass is already running."

	HelpMessage = `Commands:
/getcode: get a reward code link
/redeem <code>: exchange a code for coins (one code per line for a batch)
/balance: show your coin balance
/top: coin leaderboard
/draw [storage|account]: spend coins on a random item (storage by default)
/list <code|link|storage|account>: list stored entries
/additem <kind> <payload>: store one item
/bulkadd <kind>: start a bulk entry session
/delitem <kind> <id|payload>: remove an item
/delcode <code>: remove a pending redemption code
/addcoins <user_id> <amount>: credit coins
/removecoins <user_id> <amount>: debit coins
/dedup <kind>: remove duplicate items
/sync: re-register the command list
/info: this help`
)

func CodeIssued(link string) string {
	return fmt.Sprintf("Your code is here: %s", link)
}

func CooldownWait(err *service.CooldownError) string {
	return fmt.Sprintf("Slow down, you can get the next code in %s.", err.Remaining.Round(time.Second))
}

func RedeemReport(result service.RedeemResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Redeemed %d code(s) for %d coins each.\n", result.Redeemed, result.Reward)

	if len(result.Invalid) > 0 {
		fmt.Fprintf(&b, "Invalid or already used: %s\n", strings.Join(result.Invalid, ", "))
	}

	fmt.Fprintf(&b, "Your balance: %d", result.NewBalance)

	return b.String()
}

func BalanceReport(balance int64) string {
	return fmt.Sprintf("Your balance: %d coins", balance)
}

func InsufficientBalance(err *service.InsufficientBalanceError) string {
	return fmt.Sprintf("A draw costs %d coins and you have %d.", err.Need, err.Have)
}

func DrawDelivered(kind entity.ItemKind) string {
	return fmt.Sprintf("One %s item sent to you in private messages. Enjoy!", kind)
}

func Leaderboard(rows []service.LeaderboardRow) string {
	if len(rows) == 0 {
		return NothingStored
	}

	var b strings.Builder

	b.WriteString("Top balances:\n")

	for i, row := range rows {
		fmt.Fprintf(&b, "%d. %s: %d\n", i+1, row.Name, row.Amount)
	}

	return strings.TrimRight(b.String(), "\n")
}

func ItemAdded(added bool) string {
	if added {
		return "Item stored."
	}

	return "Item already exists, skipped."
}

func CodeRemoved(removed bool) string {
	if removed {
		return "Code removed, it can no longer be redeemed."
	}

	return "No such code."
}

func ItemDeleted(deleted bool) string {
	if deleted {
		return "Item removed."
	}

	return "No such item."
}

func ItemList(items []entity.Item) string {
	if len(items) == 0 {
		return NothingStored
	}

	var b strings.Builder

	for _, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", item.ID, item.Payload)
	}

	return strings.TrimRight(b.String(), "\n")
}

func StringList(entries []string) string {
	if len(entries) == 0 {
		return NothingStored
	}

	return strings.Join(entries, "\n")
}

func BulkFlushed(result service.FlushResult) string {
	return fmt.Sprintf("Stored %d new %s item(s), skipped %d duplicate(s), %d failed.",
		result.Added, result.Kind, result.Skipped, result.Errored)
}

func AdjustDone(userID, delta, newBalance int64) string {
	return fmt.Sprintf("Balance of %d changed by %+d, now %d.", userID, delta, newBalance)
}

func DedupReports(reports []worker.DedupReport) string {
	if len(reports) == 0 {
		return "Nothing deduplicated."
	}

	var b strings.Builder

	for _, r := range reports {
		fmt.Fprintf(&b, "%s: %d -> %d rows (%d removed)\n", r.Kind, r.Before, r.After, r.Removed)
	}

	return strings.TrimRight(b.String(), "\n")
}

func InfoReport(stats service.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Pending codes: %d\nIssued links: %d\n", stats.PendingCodes, stats.IssuedLinks)

	for _, kind := range entity.Kinds() {
		fmt.Fprintf(&b, "%s items: %d\n", kind, stats.Items[kind])
	}

	b.WriteString("\n")
	b.WriteString(HelpMessage)

	return b.String()
}

// Paginate splits a reply at the message limit.
func Paginate(text string) []string {
	return textx.SplitMessage(text, MessageLimit)
}
