package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/slaz/gameservices/internal/dependencies/clock"
	"github.com/slaz/gameservices/internal/services/game"
	"github.com/slaz/gameservices/internal/services/player"
	"github.com/slaz/gameservices/internal/storage"
	"github.com/slaz/gameservices/internal/storage/memory"
	redisstorage "github.com/slaz/gameservices/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// GameApp contains the wired game service components
type GameApp struct {
	Store       storage.GameStore
	Clock       clock.Clock
	GameService *game.Service
}

// GameConfig holds configuration for the game service factory
type GameConfig struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Players is the client for the sibling player service (required)
	Players game.PlayerRegistry
}

// NewGameApp creates a game service with all dependencies wired
func NewGameApp(cfg GameConfig) (*GameApp, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if cfg.Players == nil {
		return nil, errors.New("Players registry client is required")
	}

	store, err := newStore(cfg.StorageType, cfg.RedisConfig)
	if err != nil {
		return nil, err
	}

	clk := clock.New()

	return &GameApp{
		Store:       store,
		Clock:       clk,
		GameService: game.New(store, cfg.Players, clk, logger),
	}, nil
}

// PlayerApp contains the wired player service components
type PlayerApp struct {
	Store         storage.PlayerStore
	Clock         clock.Clock
	PlayerService *player.Service
}

// PlayerConfig holds configuration for the player service factory
type PlayerConfig struct {
	// Logger is the application logger (optional)
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Games is the client for the sibling game service (required)
	Games player.GameRegistry
}

// NewPlayerApp creates a player service with all dependencies wired
func NewPlayerApp(cfg PlayerConfig) (*PlayerApp, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if cfg.Games == nil {
		return nil, errors.New("Games registry client is required")
	}

	store, err := newStore(cfg.StorageType, cfg.RedisConfig)
	if err != nil {
		return nil, err
	}

	clk := clock.New()

	return &PlayerApp{
		Store:         store,
		Clock:         clk,
		PlayerService: player.New(store, cfg.Games, clk, logger),
	}, nil
}

// newStore creates the selected storage backend
func newStore(storageType string, redisCfg *redisstorage.Config) (storage.Store, error) {
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if redisCfg == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*redisCfg)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}
}
