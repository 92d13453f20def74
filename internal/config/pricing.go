package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

type Pricing struct {
	File string `env:"PRICES_FILE" envDefault:"prices.json"`
	// RefreshSchedule cron выражение ("0 3 * * *", "@every 1h"), пустое
	// значение отключает фоновое обновление.
	RefreshSchedule string        `env:"PRICES_REFRESH_SCHEDULE"`
	CacheTTL        time.Duration `env:"PRICES_CACHE_TTL"        envDefault:"5m"`
}

// Schedule возвращает расписание обновления прайса или nil, если оно выключено.
func (p Pricing) Schedule() (cron.Schedule, error) { //nolint:ireturn
	spec := strings.TrimSpace(p.RefreshSchedule)
	if spec == "" {
		return nil, nil //nolint:nilnil
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("cron.ParseStandard(PRICES_REFRESH_SCHEDULE=%q): %w", spec, err)
	}

	return schedule, nil
}
