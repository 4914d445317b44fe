package peer

import (
	"context"
	"net/url"

	"github.com/slaz/gameservices/internal/model"
)

// PlayerClient is the game service's view of the player service
type PlayerClient struct {
	client *Client
}

// NewPlayerClient creates a player service client
func NewPlayerClient(client *Client) *PlayerClient {
	return &PlayerClient{client: client}
}

// registrationRequest mirrors the player service registration body
type registrationRequest struct {
	Name   string `json:"name"`
	GameID int64  `json:"gameId"`
}

// RegisterPlayer registers playerName against gameID on the player service.
// A false return is the saga's signal to compensate.
func (p *PlayerClient) RegisterPlayer(ctx context.Context, playerName string, gameID model.GameID) bool {
	req := registrationRequest{
		Name:   playerName,
		GameID: int64(gameID),
	}
	return p.client.Post(ctx, "/api/v1/player/registration", req, nil)
}

// GameIDsByPlayerName resolves a player name to the game ids of every
// player carrying that name, duplicates included. The second return is
// false when the peer could not answer; callers must not confuse that
// with an empty (but authoritative) id list.
func (p *PlayerClient) GameIDsByPlayerName(ctx context.Context, playerName string) ([]model.GameID, bool) {
	var raw []int64
	path := "/api/v1/player/gameIds?name=" + url.QueryEscape(playerName)
	if !p.client.Get(ctx, path, &raw) {
		return nil, false
	}

	ids := make([]model.GameID, len(raw))
	for i, id := range raw {
		ids[i] = model.GameID(id)
	}
	return ids, true
}
