package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	HTTP     HTTPServer
	Postgres Postgres
	JWT      JWT
	Uploads  Uploads
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080"`
}

type Postgres struct {
	URL string `env:"POSTGRES_URL"`
}

type JWT struct {
	Secret string `env:"JWT_SECRET"`
}

type Uploads struct {
	Dir string `env:"UPLOAD_DIR" envDefault:"static/uploads"`
}

// Load reads .env when present and parses the environment into Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
