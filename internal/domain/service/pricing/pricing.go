package pricing

import (
	"context"
	"fmt"
	"log/slog"

	"verify_gateway/internal/domain"
	"verify_gateway/internal/domain/entity"
	"verify_gateway/pkg/contextx"
	"verify_gateway/pkg/errcodes"
	"verify_gateway/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Source источник актуальных цен.
type Source interface {
	FetchCurrentPrices(context.Context) (entity.PricingFixture, error)
}

// Store хранилище снимка цен. Save перезаписывает снимок целиком.
type Store interface {
	Save(context.Context, entity.PricingFixture) error
	Load(context.Context) (entity.PricingFixture, error)
}

type Service struct {
	source Source
	store  Store
}

func NewService(source Source, store Store) *Service {
	return &Service{
		source: source,
		store:  store,
	}
}

// Refresh забирает цены из источника и перезаписывает снимок.
// Одновременные вызовы не синхронизируются, побеждает последняя запись.
func (s *Service) Refresh(ctx context.Context) (entity.PricingFixture, error) {
	fixture, err := s.source.FetchCurrentPrices(ctx)
	if err != nil {
		pricingRefreshesCounter.WithLabelValues("source_error").Inc()

		if _, ok := domain.GetCode(err); !ok {
			err = domain.WrapError(err, errcodes.PricingSourceError, "failed to fetch prices")
		}

		return nil, fmt.Errorf("source.FetchCurrentPrices: %w", err)
	}

	if err = s.store.Save(ctx, fixture); err != nil {
		pricingRefreshesCounter.WithLabelValues("store_error").Inc()

		return nil, fmt.Errorf("store.Save: %w", err)
	}

	pricingRefreshesCounter.WithLabelValues("ok").Inc()

	logger(ctx).Info(
		"prices updated",
		slog.Any(logx.FieldProducts, fixture.Products()),
	)

	return fixture, nil
}

// Current возвращает последний сохранённый снимок.
func (s *Service) Current(ctx context.Context) (entity.PricingFixture, error) {
	fixture, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}

	return fixture, nil
}
