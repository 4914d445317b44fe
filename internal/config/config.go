// Package config loads per-service configuration from the environment.
// Peer addresses are explicit configuration injected at construction; there
// is no shared address constant between the two services.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// GameService holds configuration for the game service process
type GameService struct {
	Host             string `env:"GAME_SERVICE_HOST"`
	Port             int    `env:"GAME_SERVICE_PORT" envDefault:"2021"`
	PlayerServiceURL string `env:"PLAYER_SERVICE_URL" envDefault:"http://localhost:2020"`
	StorageType      string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL         string `env:"REDIS_URL"`
}

// PlayerService holds configuration for the player service process
type PlayerService struct {
	Host           string `env:"PLAYER_SERVICE_HOST"`
	Port           int    `env:"PLAYER_SERVICE_PORT" envDefault:"2020"`
	GameServiceURL string `env:"GAME_SERVICE_URL" envDefault:"http://localhost:2021"`
	StorageType    string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL       string `env:"REDIS_URL"`
}

// LoadGameService parses game service configuration from the environment
func LoadGameService() (GameService, error) {
	var cfg GameService
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadPlayerService parses player service configuration from the environment
func LoadPlayerService() (PlayerService, error) {
	var cfg PlayerService
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
