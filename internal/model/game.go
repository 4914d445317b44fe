package model

import "time"

// GameID identifies a game record. IDs are assigned by the store on first
// save; zero is never a valid id and doubles as the "not linked" sentinel
// on Player records.
type GameID int64

// GameStatus is the lifecycle status of a game
type GameStatus string

const (
	GameStatusNew        GameStatus = "NEW"
	GameStatusInProgress GameStatus = "IN_PROGRESS"
	GameStatusFinished   GameStatus = "FINISHED"
	GameStatusDropped    GameStatus = "DROPPED"
)

// ParseGameStatus maps a status string onto the closed status set.
// The second return is false for anything outside the set, including blank.
func ParseGameStatus(s string) (GameStatus, bool) {
	switch GameStatus(s) {
	case GameStatusNew, GameStatusInProgress, GameStatusFinished, GameStatusDropped:
		return GameStatus(s), true
	default:
		return "", false
	}
}

// Game represents a game record owned by the game service
type Game struct {
	ID        GameID
	Name      string
	Status    GameStatus
	CreatedAt time.Time
}
