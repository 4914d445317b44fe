package response

import (
	"time"

	"github.com/slaz/gameservices/internal/model"
)

// Game represents a game in API responses
type Game struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:        int64(g.ID),
		Name:      g.Name,
		Status:    string(g.Status),
		CreatedAt: g.CreatedAt,
	}
}

// GamesFromModel converts a slice of model games
func GamesFromModel(games []*model.Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return out
}

// Player represents a player in API responses.
// GameID zero means the player is not linked to any game.
type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	GameID    int64     `json:"gameId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        int64(p.ID),
		Name:      p.Name,
		GameID:    int64(p.GameID),
		CreatedAt: p.CreatedAt,
	}
}

// PlayersFromModel converts a slice of model players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// GameIDsFromModel converts game ids to their wire representation
func GameIDsFromModel(ids []model.GameID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
