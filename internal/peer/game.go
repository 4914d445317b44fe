package peer

import (
	"context"
	"fmt"

	"github.com/slaz/gameservices/internal/model"
)

// GameClient is the player service's view of the game service
type GameClient struct {
	client *Client
}

// NewGameClient creates a game service client
func NewGameClient(client *Client) *GameClient {
	return &GameClient{client: client}
}

// GameExists probes the game service for the given id. It returns false
// when the game is absent, the peer reports an error, or the peer is
// unreachable; the admission check treats all three the same way.
func (g *GameClient) GameExists(ctx context.Context, id model.GameID) bool {
	return g.client.Get(ctx, fmt.Sprintf("/api/v1/game/%d", id), nil)
}
