package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Token   string `env:"BOT_TOKEN,required,notEmpty"`
	Prefix  string `env:"BOT_PREFIX" envDefault:"!"`
	GuildID string `env:"BOT_GUILD_ID"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	return &cfg, nil
}
