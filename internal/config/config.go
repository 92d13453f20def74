package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config собирается один раз при старте и передаётся в приложение явно.
type Config struct {
	App     App
	HTTP    HTTP
	Twilio  Twilio
	Pricing Pricing
}

type App struct {
	Name           string `env:"APP_NAME"        envDefault:"verify-gateway"`
	Version        string `env:"APP_VERSION"     envDefault:"dev"`
	LogLevel       string `env:"LOG_LEVEL"       envDefault:"info"`
	ProbeAddress   string `env:"PROBE_ADDRESS"   envDefault:":8081"`
	MetricsAddress string `env:"METRICS_ADDRESS" envDefault:":9090"`
}

// Load читает .env (если есть) и переменные окружения. Отсутствие любой
// обязательной переменной возвращает ошибку.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if _, err := config.Pricing.Schedule(); err != nil {
		return Config{}, fmt.Errorf("config.Pricing.Schedule: %w", err)
	}

	return config, nil
}

// LoadPricing читает только настройки прайса. Twilio переменные не требуются.
func LoadPricing() (Pricing, error) {
	_ = godotenv.Load()

	var pricing Pricing

	if err := env.Parse(&pricing); err != nil {
		return Pricing{}, fmt.Errorf("env.Parse: %w", err)
	}

	return pricing, nil
}
