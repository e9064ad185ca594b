package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"rewardbot/internal/domain"
	"rewardbot/pkg/contextx"
	"rewardbot/pkg/errcodes"
	"rewardbot/pkg/textx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// maxMessageLen is the platform's per-message text limit.
const maxMessageLen = 4096

// Courier delivers inventory payloads to users in their private chat.
// Delivery fails for users who never opened a dialog with the bot; the draw
// workflow treats that as a compensable failure, not a crash.
type Courier struct {
	bot *telego.Bot
}

func NewCourier(bot *telego.Bot) *Courier {
	return &Courier{bot: bot}
}

// DeliverPayload sends payload privately, chunked when it exceeds the
// message limit.
func (c *Courier) DeliverPayload(ctx context.Context, userID int64, payload string) error {
	chunks := textx.SplitMessage(payload, maxMessageLen-64) // leave room for the part header

	for i, chunk := range chunks {
		text := chunk
		if len(chunks) > 1 {
			text = fmt.Sprintf("Part %d/%d:\n%s", i+1, len(chunks), chunk)
		}

		if _, err := c.bot.SendMessage(ctx, tu.Message(tu.ID(userID), text)); err != nil {
			return domain.WrapError(err, errcodes.DeliveryFailed, "failed to deliver payload")
		}
	}

	logger(ctx).Info("payload delivered", "user_id", userID, "parts", len(chunks))

	return nil
}

// SendText sends a plain private message, used for operational notices.
func (c *Courier) SendText(ctx context.Context, chatID int64, text string) error {
	if _, err := c.bot.SendMessage(ctx, tu.Message(tu.ID(chatID), text)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
