package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"verify_gateway/internal/domain/entity"
	"verify_gateway/pkg/contextx"
	"verify_gateway/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type pricingService interface {
	Refresh(context.Context) (entity.PricingFixture, error)
}

// PriceRefresher периодически публикует актуальный прайс.
type PriceRefresher struct {
	pricingService pricingService
	schedule       cron.Schedule
}

func NewPriceRefresher(pricingService pricingService, schedule cron.Schedule) *PriceRefresher {
	return &PriceRefresher{
		pricingService: pricingService,
		schedule:       schedule,
	}
}

// Run обновляет прайс сразу и затем по расписанию до отмены контекста.
// Ошибка одного обновления не останавливает цикл.
func (w *PriceRefresher) Run(ctx context.Context) error {
	if w.schedule == nil {
		return errors.New("price refresher schedule is not set")
	}

	logger(ctx).Info("price refresher started")

	for {
		w.refresh(ctx)

		next := w.schedule.Next(time.Now())
		if next.IsZero() {
			return errors.New("price refresher schedule has no next run")
		}

		logger(ctx).Debug("next price refresh", slog.Time("at", next))

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			logger(ctx).Info("price refresher stopped")

			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (w *PriceRefresher) refresh(ctx context.Context) {
	fixture, err := w.pricingService.Refresh(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger(ctx).Error("pricingService.Refresh", logx.Error(err))
		}

		return
	}

	logger(ctx).Debug("prices refreshed", slog.Int(logx.FieldProducts, len(fixture)))
}
