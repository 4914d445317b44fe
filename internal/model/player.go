package model

import "time"

// PlayerID uniquely identifies a player record
type PlayerID int64

// UnlinkedGame is the sentinel game id for players not linked to any game.
// It is distinct from "field absent" on the wire: an unverifiable claimed
// game id is normalised to this value rather than rejected.
const UnlinkedGame GameID = 0

// Player represents a player record owned by the player service.
// GameID is an advisory reference: its validity is checked once, when the
// player is admitted, and never re-verified. Deleting the referenced game
// leaves the id dangling.
type Player struct {
	ID        PlayerID
	Name      string
	GameID    GameID
	CreatedAt time.Time
}

// Linked reports whether the player references a game
func (p *Player) Linked() bool {
	return p.GameID != UnlinkedGame
}
