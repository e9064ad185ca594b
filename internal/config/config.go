package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Bot       Bot
	Postgres  Postgres
	Paste     Paste
	Shortener Shortener
	Economy   Economy
	Servers   Servers
}

type Servers struct {
	ProbeAddress   string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	AdminAddress   string `env:"ADMIN_API_LISTEN_ADDRESS" envDefault:":8080"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
