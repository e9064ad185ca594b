package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"rewardbot/internal/config"
	service "rewardbot/internal/domain/service/reward"
	"rewardbot/internal/infrastructure/notifier"
	"rewardbot/internal/infrastructure/paste"
	"rewardbot/internal/infrastructure/persistence"
	"rewardbot/internal/infrastructure/shortener"
	"rewardbot/internal/server"
	"rewardbot/internal/transport/bot"
	"rewardbot/internal/transport/bot/handler"
	"rewardbot/internal/worker"
	"rewardbot/pkg/application/connectors"
	"rewardbot/pkg/application/modules"
	"rewardbot/pkg/httpx"
	"rewardbot/pkg/logx"
	"rewardbot/pkg/middlewarex"
)

const (
	appName = "rewardbot"

	outboundTimeout     = 30 * time.Second
	shutdownTimeout     = 10 * time.Second
	readHeaderTimeout   = 5 * time.Second
	logFieldMaxLen      = 2048
	shortenerTokenParam = "token"
)

func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	if err := persistence.Bootstrap(ctx, db); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	log.Info("database ready")

	// 3. Repositories
	codeRepo := persistence.NewCodeRepository(db)
	balanceRepo := persistence.NewBalanceRepository(db)
	cooldownRepo := persistence.NewCooldownRepository(db)
	itemRepo := persistence.NewItemRepository(db)
	linkRepo := persistence.NewLinkRepository(db)

	// 4. Outbound HTTP clients
	masker := logx.NewSensitiveDataMasker()

	pasteClient := paste.NewClient(cfg.Paste, &http.Client{
		Timeout: outboundTimeout,
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		),
	})

	shortenerClient := shortener.NewClient(cfg.Shortener, &http.Client{
		Timeout: outboundTimeout,
		Transport: httpx.NewAPIKeyRoundTripper(
			httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(masker),
				httpx.WithLogFieldMaxLen(logFieldMaxLen),
			),
			shortenerTokenParam,
			cfg.Shortener.APIToken,
		),
	})

	// 5. Bot client, shared by the transport and the delivery courier
	tgBot, err := telego.NewBot(cfg.Bot.Token)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	courier := notifier.NewCourier(tgBot)
	resolver := notifier.NewResolver(tgBot)

	// 6. Domain service and workers
	svc := service.NewRewardService(
		codeRepo,
		balanceRepo,
		cooldownRepo,
		itemRepo,
		linkRepo,
		pasteClient,
		shortenerClient,
		courier,
		resolver,
		cfg.Economy,
		cfg.Bot.OwnerID,
	)

	deduper := worker.NewDeduper(svc)

	if _, err := deduper.Run(ctx); err != nil {
		// Duplicates only waste draws, they do not corrupt anything.
		log.Warn("startup deduplication incomplete", "error", err)
	}

	// 7. Transport
	tgTransport, err := bot.New(ctx, tgBot, handler.New(svc, deduper, cfg.Bot), cfg.Bot)
	if err != nil {
		return fmt.Errorf("create bot transport: %w", err)
	}

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)
	server.NewServer(svc).RegisterRoutes(router)

	// 8. Run everything until the first failure or shutdown signal
	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          appName,
		Version:       version(),
		ListenAddress: cfg.Servers.ProbeAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Servers.MetricsAddress,
	}.Run(ctx, g)

	modules.HTTPServer{
		ShutdownTimeout: shutdownTimeout,
	}.Run(ctx, g, &http.Server{ //nolint:exhaustruct
		Addr:              cfg.Servers.AdminAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	})

	g.Go(func() error {
		if err := tgTransport.Run(ctx); err != nil {
			return fmt.Errorf("bot transport: %w", err)
		}

		return nil
	})

	return g.Wait()
}
