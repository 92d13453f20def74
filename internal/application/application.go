package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"verify_gateway/internal/config"
	pricingservice "verify_gateway/internal/domain/service/pricing"
	"verify_gateway/internal/domain/service/verification"
	"verify_gateway/internal/infrastructure/pricing"
	"verify_gateway/internal/infrastructure/twilio"
	"verify_gateway/internal/server"
	"verify_gateway/internal/worker"
	"verify_gateway/pkg/application/modules"
	"verify_gateway/pkg/contextx"
	"verify_gateway/pkg/logx"
)

const httpServerReadHeaderTimeout = 5 * time.Second

// Run загружает конфиг, собирает зависимости и блокируется до отмены ctx
// или падения одного из модулей. Ошибка конфига возвращается до открытия
// каких-либо портов.
func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	ctx = contextx.WithLogger(ctx, log)

	// 2. Verification
	verificationService := verification.NewService(twilio.NewClient(cfg.Twilio, cfg.HTTP.LogFieldMaxLen))

	// 3. Pricing
	pricingService := newPricingService(cfg.Pricing)

	schedule, err := cfg.Pricing.Schedule()
	if err != nil {
		return fmt.Errorf("cfg.Pricing.Schedule: %w", err)
	}

	// 4. HTTP
	s := server.NewServer(
		server.NewVerificationServer(verificationService),
		server.NewPricingServer(pricingService),
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.HTTP.ListenAddress(),
		Handler:           server.NewRouter(s, cfg.HTTP.LogFieldMaxLen),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.App.ProbeAddress,
	}.Run(ctx, g)
	modules.MetricServer{ListenAddress: cfg.App.MetricsAddress}.Run(ctx, g)

	// 5. Фоновое обновление прайса
	if schedule != nil {
		refresher := worker.NewPriceRefresher(pricingService, schedule)

		g.Go(func() error {
			if err := refresher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("refresher.Run: %w", err)
			}

			return nil
		})
	}

	log.Info("application started",
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
		slog.String("address", httpServer.Addr),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}

// UpdatePrices однократно публикует прайс в файл и завершается.
func UpdatePrices(ctx context.Context, log *slog.Logger) error {
	cfg, err := config.LoadPricing()
	if err != nil {
		return fmt.Errorf("config.LoadPricing: %w", err)
	}

	ctx = contextx.WithLogger(ctx, log)

	fixture, err := newPricingService(cfg).Refresh(ctx)
	if err != nil {
		return fmt.Errorf("pricingService.Refresh: %w", err)
	}

	log.Info("prices updated",
		slog.String(logx.FieldPricesFile, cfg.File),
		slog.Int(logx.FieldProducts, len(fixture)),
	)

	return nil
}

func newPricingService(cfg config.Pricing) *pricingservice.Service {
	store := pricing.NewFileStore(cfg.File, cache.New(cfg.CacheTTL, 2*cfg.CacheTTL))

	return pricingservice.NewService(pricing.NewStaticSource(), store)
}
