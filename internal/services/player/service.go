package player

import (
	"context"
	"log/slog"

	"github.com/slaz/gameservices/internal/dependencies/clock"
	"github.com/slaz/gameservices/internal/model"
	"github.com/slaz/gameservices/internal/storage"
)

// GameRegistry is the slice of the game service the player service calls
type GameRegistry interface {
	GameExists(ctx context.Context, id model.GameID) bool
}

// Service implements the player registry: the admission check with its
// degrade-to-default policy, the saga's inbound registration endpoint, and
// plain CRUD over the entity store.
type Service struct {
	store  storage.PlayerStore
	games  GameRegistry
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new player service
func New(store storage.PlayerStore, games GameRegistry, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		games:  games,
		clock:  clk,
		logger: logger,
	}
}

// CreatePlayer admits a player. A claimed game id is verified against the
// game service once, at this moment; if the game is absent or the game
// service cannot answer, the link degrades to the unlinked sentinel rather
// than failing the request. Unlinked players are then subject to the
// name-uniqueness rule: at most one unlinked player per name.
func (s *Service) CreatePlayer(ctx context.Context, name string, claimedGameID model.GameID) (*model.Player, error) {
	gameID := s.effectiveGameID(ctx, claimedGameID)

	if gameID == model.UnlinkedGame {
		existing, err := s.store.FindPlayersByName(ctx, name)
		if err != nil {
			return nil, err
		}
		for _, p := range existing {
			if !p.Linked() {
				return nil, model.ErrDuplicatePlayerName
			}
		}
	}

	player := &model.Player{
		Name:      name,
		GameID:    gameID,
		CreatedAt: s.clock.Now(),
	}

	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("name", name),
		slog.Int64("game_id", int64(gameID)),
	)
	return player, nil
}

// effectiveGameID resolves a claimed game id to the value actually stored.
// Only a link the game service positively confirms survives.
func (s *Service) effectiveGameID(ctx context.Context, claimed model.GameID) model.GameID {
	if claimed == model.UnlinkedGame {
		return model.UnlinkedGame
	}
	if s.games.GameExists(ctx, claimed) {
		return claimed
	}

	s.logger.Warn("claimed game not verifiable, degrading to unlinked",
		slog.Int64("claimed_game_id", int64(claimed)),
	)
	return model.UnlinkedGame
}

// RegisterPlayer is the creation saga's inbound entry point. It is
// idempotent on the exact (name, gameID) pair: the first call creates a
// player and returns true, a repeat finds the pair and returns false with
// no new record.
func (s *Service) RegisterPlayer(ctx context.Context, name string, gameID model.GameID) (bool, error) {
	existing, err := s.store.FindPlayersByName(ctx, name)
	if err != nil {
		return false, err
	}
	for _, p := range existing {
		if p.GameID == gameID {
			return false, nil
		}
	}

	player := &model.Player{
		Name:      name,
		GameID:    gameID,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.SavePlayer(ctx, player); err != nil {
		return false, err
	}

	s.logger.Info("player registered",
		slog.Int64("player_id", int64(player.ID)),
		slog.String("name", name),
		slog.Int64("game_id", int64(gameID)),
	)
	return true, nil
}

// GetPlayer retrieves a player by id
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.store.GetPlayer(ctx, id)
}

// ListPlayers returns all players
func (s *Service) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.store.ListPlayers(ctx)
}

// PlayersByName returns every player with the given name
func (s *Service) PlayersByName(ctx context.Context, name string) ([]*model.Player, error) {
	return s.store.FindPlayersByName(ctx, name)
}

// DeletePlayer removes a player by id
func (s *Service) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	if _, err := s.store.GetPlayer(ctx, id); err != nil {
		return err
	}
	return s.store.DeletePlayer(ctx, id)
}

// GameIDsByPlayerName returns the game id of every player with the given
// name, one entry per matching player, duplicates included
func (s *Service) GameIDsByPlayerName(ctx context.Context, name string) ([]model.GameID, error) {
	players, err := s.store.FindPlayersByName(ctx, name)
	if err != nil {
		return nil, err
	}

	ids := make([]model.GameID, len(players))
	for i, p := range players {
		ids[i] = p.GameID
	}
	return ids, nil
}
