package game

import (
	"context"
	"log/slog"

	"github.com/slaz/gameservices/internal/dependencies/clock"
	"github.com/slaz/gameservices/internal/model"
	"github.com/slaz/gameservices/internal/storage"
)

// SagaState tracks a game creation saga through its two steps.
// Persist moves it to Pending; the remote registration either completes it
// as Linked or forces the compensating delete and RolledBack.
type SagaState string

const (
	SagaPending    SagaState = "PENDING"
	SagaLinked     SagaState = "LINKED"
	SagaRolledBack SagaState = "ROLLED_BACK"
)

// PlayerRegistry is the slice of the player service the game service calls.
// Both operations report failure as a bare false; the caller cannot tell a
// down peer from a rejecting one and must not try.
type PlayerRegistry interface {
	RegisterPlayer(ctx context.Context, playerName string, gameID model.GameID) bool
	GameIDsByPlayerName(ctx context.Context, playerName string) ([]model.GameID, bool)
}

// Service implements the game registry: CRUD over the entity store, the
// creation saga, and the cross-service filter engine.
type Service struct {
	store   storage.GameStore
	players PlayerRegistry
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new game service
func New(store storage.GameStore, players PlayerRegistry, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		players: players,
		clock:   clk,
		logger:  logger,
	}
}

// CreateGame runs the two-step creation saga: persist the game, then
// register the player against it on the player service. If registration
// fails the just-created game is deleted and ErrRegistrationFailed is
// returned with SagaRolledBack.
//
// Between persist and the registration outcome the unlinked game is visible
// to concurrent readers. That window is a documented property of the saga,
// not something to close with a lock.
func (s *Service) CreateGame(ctx context.Context, name, playerName string) (*model.Game, SagaState, error) {
	game := &model.Game{
		Name:      name,
		Status:    model.GameStatusNew,
		CreatedAt: s.clock.Now(),
	}

	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, SagaPending, err
	}

	if !s.players.RegisterPlayer(ctx, playerName, game.ID) {
		// Compensate. A store failure here is fatal and propagates; there
		// is no further recovery to attempt.
		if err := s.store.DeleteGame(ctx, game.ID); err != nil {
			return nil, SagaPending, err
		}

		s.logger.Warn("game creation rolled back, player registration failed",
			slog.Int64("game_id", int64(game.ID)),
			slog.String("player_name", playerName),
		)
		return nil, SagaRolledBack, model.ErrRegistrationFailed
	}

	s.logger.Info("game created",
		slog.Int64("game_id", int64(game.ID)),
		slog.String("player_name", playerName),
	)
	return game, SagaLinked, nil
}

// GetGame retrieves a game by id
func (s *Service) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return s.store.GetGame(ctx, id)
}

// ListGames returns all games
func (s *Service) ListGames(ctx context.Context) ([]*model.Game, error) {
	return s.store.ListGames(ctx)
}

// UpdateGame overwrites a game's name and status. Any status may move to
// any other; there is no transition restriction.
func (s *Service) UpdateGame(ctx context.Context, id model.GameID, name string, status model.GameStatus) (*model.Game, error) {
	game, err := s.store.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Name = name
	game.Status = status

	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// DeleteGame removes a game by id. Players referencing it are neither
// deleted nor unlinked; their game ids dangle from this point on.
func (s *Service) DeleteGame(ctx context.Context, id model.GameID) error {
	if _, err := s.store.GetGame(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteGame(ctx, id)
}

// FilteredGames answers the compound query over game name, status text and
// player name. Blank inputs mean "no filter on that attribute".
//
// The status text parses tolerantly: an unrecognised value is identical to
// blank. The player name term resolves through the player service; if that
// call fails the term is dropped entirely, whereas a successful call with
// zero ids legitimately empties the result.
func (s *Service) FilteredGames(ctx context.Context, gameName, statusText, playerName string) ([]*model.Game, error) {
	status, haveStatus := model.ParseGameStatus(statusText)

	var idFilter map[model.GameID]struct{}
	haveIDFilter := false
	if playerName != "" {
		if ids, ok := s.players.GameIDsByPlayerName(ctx, playerName); ok {
			haveIDFilter = true
			idFilter = make(map[model.GameID]struct{}, len(ids))
			for _, id := range ids {
				idFilter[id] = struct{}{}
			}
		} else {
			s.logger.Warn("player name filter dropped, player service unavailable",
				slog.String("player_name", playerName),
			)
		}
	}

	games, err := s.findByNameAndStatus(ctx, gameName, status, haveStatus)
	if err != nil {
		return nil, err
	}

	if !haveIDFilter {
		return games, nil
	}

	filtered := []*model.Game{}
	for _, g := range games {
		if _, ok := idFilter[g.ID]; ok {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

// findByNameAndStatus picks exactly one of the four local query shapes
func (s *Service) findByNameAndStatus(ctx context.Context, name string, status model.GameStatus, haveStatus bool) ([]*model.Game, error) {
	switch {
	case name != "" && haveStatus:
		return s.store.FindGamesByNameAndStatus(ctx, name, status)
	case name != "":
		return s.store.FindGamesByName(ctx, name)
	case haveStatus:
		return s.store.FindGamesByStatus(ctx, status)
	default:
		return s.store.ListGames(ctx)
	}
}
