package model

import "errors"

// Common errors used across both services
var (
	// Game errors
	ErrGameNotFound       = errors.New("game not found")
	ErrInvalidGameStatus  = errors.New("invalid game status")
	ErrRegistrationFailed = errors.New("player registration failed")

	// Player errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrDuplicatePlayerName = errors.New("an unlinked player with this name already exists")
)
