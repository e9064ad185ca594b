package config

type Bot struct {
	Token string `env:"BOT_TOKEN,required" json:"-"`

	// OwnerID is the privileged user: exempt from the issue cooldown and the
	// draw cost, and the only one allowed to run admin commands.
	OwnerID int64 `env:"BOT_OWNER_ID,required"`

	// AdminChatID restricts admin commands to one chat; the owner bypasses it.
	AdminChatID int64 `env:"BOT_ADMIN_CHAT_ID,required"`

	// ScopeChatID, when set, registers the command list only for that chat
	// instead of globally. Used for test deployments.
	ScopeChatID int64 `env:"BOT_SCOPE_CHAT_ID"`
}
