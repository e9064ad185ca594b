package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"rewardbot/internal/domain/entity"
	service "rewardbot/internal/domain/service/reward"
	"rewardbot/pkg/contextx"
	"rewardbot/pkg/httpx/reply"
	"rewardbot/pkg/httpx/req"
	"rewardbot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type rewardService interface {
	Leaderboard(ctx context.Context, limit int) ([]service.LeaderboardRow, error)
	Stats(ctx context.Context) (service.Stats, error)
	CountItems(ctx context.Context, kind entity.ItemKind) (int64, error)
	AdjustBalance(ctx context.Context, userID int64, delta int64) (int64, error)
}

// Server exposes admin queries over HTTP, mirroring the owner-only bot
// commands for dashboards and scripts.
type Server struct {
	rewardService rewardService
}

func NewServer(rewardService rewardService) Server {
	return Server{
		rewardService: rewardService,
	}
}

func (s Server) getV1Leaderboard(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	rows, err := s.rewardService.Leaderboard(ctx, defaultLeaderboardSize)
	if err != nil {
		return fmt.Errorf("rewardService.Leaderboard: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTLeaderboard(rows))

	return nil
}

func (s Server) getV1InventoryStats(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	kind, err := entity.ParseItemKind(r.PathValue("kind"))
	if err != nil {
		return fmt.Errorf("entity.ParseItemKind: %w", err)
	}

	count, err := s.rewardService.CountItems(ctx, kind)
	if err != nil {
		return fmt.Errorf("rewardService.CountItems: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, inventoryStats{Kind: kind.String(), Count: count})

	return nil
}

func (s Server) getV1Stats(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	stats, err := s.rewardService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("rewardService.Stats: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTStats(stats))

	return nil
}

func (s Server) postV1BalanceAdjust(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request balanceAdjustRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	// Tag the request with the target user so downstream logs carry it.
	userID := contextx.UserID(strconv.FormatInt(request.UserID, 10))
	ctx = contextx.WithUserID(ctx, userID)
	ctx = contextx.WithLogger(ctx, logger(ctx).With(logx.FieldUserID, userID.String()))

	newBalance, err := s.rewardService.AdjustBalance(ctx, request.UserID, request.Delta)
	if err != nil {
		return fmt.Errorf("rewardService.AdjustBalance: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, balanceAdjustResponse{
		UserID:  request.UserID,
		Balance: newBalance,
	})

	return nil
}
