package entity

import "time"

// RedemptionCode is a single-use token exchanged for a fixed amount of coins.
// Codes are never marked used: redemption deletes the row.
type RedemptionCode struct {
	Code string
}

// Cooldown records when a user last issued a code. One row per user, the
// timestamp is replaced on every successful issuance.
type Cooldown struct {
	UserID       int64
	LastIssuedAt time.Time
}
