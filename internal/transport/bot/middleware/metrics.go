package middleware

import (
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bot_commands_total",
	Help: "Number of bot command invocations by command name.",
}, []string{"command"})

// CommandCounter records one counter increment per command message.
func CommandCounter() th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if command := commandName(update); command != "" {
			commandsTotal.WithLabelValues(command).Inc()
		}

		return ctx.Next(update)
	}
}

func commandName(update telego.Update) string {
	if update.Message == nil || !strings.HasPrefix(update.Message.Text, "/") {
		return ""
	}

	command := strings.Fields(update.Message.Text)[0]
	command = strings.TrimPrefix(command, "/")

	// Strip the bot-mention suffix used in group chats.
	if i := strings.IndexByte(command, '@'); i >= 0 {
		command = command[:i]
	}

	return command
}
