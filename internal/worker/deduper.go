package worker

import (
	"context"
	"errors"
	"sync"

	"rewardbot/internal/domain/entity"
	"rewardbot/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var ErrDedupRunning = errors.New("deduplication already running")

type RewardService interface {
	Deduplicate(ctx context.Context, kind entity.ItemKind) (before, after int64, err error)
}

type DedupReport struct {
	Kind    entity.ItemKind
	Before  int64
	After   int64
	Removed int64
}

// Deduper runs the keep-lowest-id dedup pass over every inventory kind.
// One pass fires at startup; the admin command reuses the same instance, so
// overlapping runs are rejected instead of stacking full-table rewrites.
type Deduper struct {
	service RewardService

	// Control fields
	mu        sync.Mutex
	isRunning bool
}

func NewDeduper(service RewardService) *Deduper {
	return &Deduper{service: service}
}

func (w *Deduper) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.isRunning
}

// Run walks both inventory kinds once and reports per-kind counts. A kind
// that fails does not stop the pass for the remaining kinds.
func (w *Deduper) Run(ctx context.Context) ([]DedupReport, error) {
	w.mu.Lock()
	if w.isRunning {
		w.mu.Unlock()

		return nil, ErrDedupRunning
	}

	w.isRunning = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.isRunning = false
		w.mu.Unlock()
	}()

	logger(ctx).Info("deduplication pass started")

	var (
		reports []DedupReport
		lastErr error
	)

	for _, kind := range entity.Kinds() {
		before, after, err := w.service.Deduplicate(ctx, kind)
		if err != nil {
			logger(ctx).Error("deduplication failed", "kind", kind, "error", err)
			lastErr = err

			continue
		}

		reports = append(reports, DedupReport{
			Kind:    kind,
			Before:  before,
			After:   after,
			Removed: before - after,
		})
	}

	logger(ctx).Info("deduplication pass finished", "kinds", len(reports))

	return reports, lastErr
}
