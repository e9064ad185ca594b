package server

import (
	"rewardbot/internal/domain/entity"
	service "rewardbot/internal/domain/service/reward"
)

const defaultLeaderboardSize = 10

type leaderboardEntry struct {
	UserID  int64  `json:"userId"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

type inventoryStats struct {
	Kind  string `json:"kind"`
	Count int64  `json:"count"`
}

type statsResponse struct {
	PendingCodes int              `json:"pendingCodes"`
	IssuedLinks  int              `json:"issuedLinks"`
	Items        []inventoryStats `json:"items"`
}

type balanceAdjustRequest struct {
	UserID int64 `json:"userId" validate:"required"`
	Delta  int64 `json:"delta" validate:"required"`
}

type balanceAdjustResponse struct {
	UserID  int64 `json:"userId"`
	Balance int64 `json:"balance"`
}

func newRESTLeaderboard(rows []service.LeaderboardRow) []leaderboardEntry {
	entries := make([]leaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, leaderboardEntry{
			UserID:  row.UserID,
			Name:    row.Name,
			Balance: row.Amount,
		})
	}

	return entries
}

func newRESTStats(stats service.Stats) statsResponse {
	resp := statsResponse{
		PendingCodes: stats.PendingCodes,
		IssuedLinks:  stats.IssuedLinks,
	}

	for _, kind := range entity.Kinds() {
		resp.Items = append(resp.Items, inventoryStats{Kind: kind.String(), Count: stats.Items[kind]})
	}

	return resp
}
