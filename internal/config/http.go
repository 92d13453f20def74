package config

import (
	"strconv"
	"time"
)

type HTTP struct {
	Port            int           `env:"PORT"                   envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"  envDefault:"10s"`
	LogFieldMaxLen  int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

func (h HTTP) ListenAddress() string {
	return ":" + strconv.Itoa(h.Port)
}
