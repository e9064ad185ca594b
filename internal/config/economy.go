package config

import "time"

// Economy holds the tunable business constants.
type Economy struct {
	IssueCooldown time.Duration `env:"ISSUE_COOLDOWN" envDefault:"5m"`
	CodeReward    int64         `env:"CODE_REWARD" envDefault:"150"`
	DrawCost      int64         `env:"DRAW_COST" envDefault:"150"`
	CodeLength    int           `env:"CODE_LENGTH" envDefault:"20"`
}
