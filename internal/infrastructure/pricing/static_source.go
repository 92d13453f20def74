package pricing

import (
	"context"

	"verify_gateway/internal/domain/entity"
)

// StaticSource отдаёт зашитую таблицу цен. Заглушка до подключения
// внешнего прайс-листа: реальный источник реализует тот же интерфейс.
type StaticSource struct{}

func NewStaticSource() StaticSource {
	return StaticSource{}
}

func (StaticSource) FetchCurrentPrices(context.Context) (entity.PricingFixture, error) {
	return entity.PricingFixture{
		"panel-100": {
			Base:   map[string]int{"small": 1200, "medium": 1500, "large": 1800},
			Factor: map[string]int{"new": 0, "mid": 150, "old": 300},
		},
		"panel-200": {
			Base:   map[string]int{"small": 1800, "medium": 2200, "large": 2600},
			Factor: map[string]int{"new": 0, "mid": 200, "old": 400},
		},
		"ev-charger": {
			Base:   map[string]int{"small": 650, "medium": 850, "large": 1100},
			Factor: map[string]int{"new": 0, "mid": 100, "old": 250},
		},
		"smart-home": {
			Base:   map[string]int{"small": 900, "medium": 1300, "large": 1700},
			Factor: map[string]int{"new": 0, "mid": 120, "old": 280},
		},
	}, nil
}
