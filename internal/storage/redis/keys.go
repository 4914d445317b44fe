package redis

import (
	"fmt"

	"github.com/slaz/gameservices/internal/model"
)

// Key prefix for all registry data
const keyPrefix = "gamereg"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%d", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of all game keys
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// gameSeqKey returns the Redis key for the game id sequence
func gameSeqKey() string {
	return fmt.Sprintf("%s:seq:game", keyPrefix)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%d", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// playerSeqKey returns the Redis key for the player id sequence
func playerSeqKey() string {
	return fmt.Sprintf("%s:seq:player", keyPrefix)
}
