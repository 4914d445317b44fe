package request

// CreateGameRequest is the body for creating a game via the saga
type CreateGameRequest struct {
	Name       string `json:"name"`
	PlayerName string `json:"playerName"`
}

// UpdateGameRequest is the body for overwriting a game's name and status
type UpdateGameRequest struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// CreatePlayerRequest is the body for creating a player.
// GameID is optional; absence means "not linked to any game".
type CreatePlayerRequest struct {
	Name   string `json:"name"`
	GameID *int64 `json:"gameId,omitempty"`
}

// RegisterPlayerRequest is the body for the saga's registration endpoint
type RegisterPlayerRequest struct {
	Name   string `json:"name"`
	GameID int64  `json:"gameId"`
}
