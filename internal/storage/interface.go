package storage

import (
	"context"

	"github.com/slaz/gameservices/internal/model"
)

// GameStore defines the entity store used by the game service.
// SaveGame assigns an id when the record has none. The find methods are the
// attribute-equality query shapes the filter engine relies on; results are
// ordered by ascending id.
type GameStore interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGames(ctx context.Context) ([]*model.Game, error)
	FindGamesByName(ctx context.Context, name string) ([]*model.Game, error)
	FindGamesByStatus(ctx context.Context, status model.GameStatus) ([]*model.Game, error)
	FindGamesByNameAndStatus(ctx context.Context, name string, status model.GameStatus) ([]*model.Game, error)
}

// PlayerStore defines the entity store used by the player service
type PlayerStore interface {
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	FindPlayersByName(ctx context.Context, name string) ([]*model.Player, error)
}

// Store is implemented by backends that can serve either service.
// Each process only ever uses the half that belongs to it; the sibling's
// records are reached through the peer client, never read directly.
type Store interface {
	GameStore
	PlayerStore
}
