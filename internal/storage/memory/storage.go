package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/slaz/gameservices/internal/model"
	"github.com/slaz/gameservices/internal/storage"
)

// Storage is an in-memory implementation of the storage interfaces
type Storage struct {
	mu sync.RWMutex

	games        map[model.GameID]*model.Game
	players      map[model.PlayerID]*model.Player
	nextGameID   model.GameID
	nextPlayerID model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:        make(map[model.GameID]*model.Game),
		players:      make(map[model.PlayerID]*model.Player),
		nextGameID:   1,
		nextPlayerID: 1,
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if game.ID == 0 {
		game.ID = s.nextGameID
		s.nextGameID++
	}
	copied := *game
	s.games[game.ID] = &copied
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	copied := *game
	return &copied, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	return s.findGames(func(*model.Game) bool { return true }), nil
}

func (s *Storage) FindGamesByName(ctx context.Context, name string) ([]*model.Game, error) {
	return s.findGames(func(g *model.Game) bool { return g.Name == name }), nil
}

func (s *Storage) FindGamesByStatus(ctx context.Context, status model.GameStatus) ([]*model.Game, error) {
	return s.findGames(func(g *model.Game) bool { return g.Status == status }), nil
}

func (s *Storage) FindGamesByNameAndStatus(ctx context.Context, name string, status model.GameStatus) ([]*model.Game, error) {
	return s.findGames(func(g *model.Game) bool { return g.Name == name && g.Status == status }), nil
}

func (s *Storage) findGames(match func(*model.Game) bool) []*model.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := []*model.Game{}
	for _, g := range s.games {
		if match(g) {
			copied := *g
			games = append(games, &copied)
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player.ID == 0 {
		player.ID = s.nextPlayerID
		s.nextPlayerID++
	}
	copied := *player
	s.players[player.ID] = &copied
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.findPlayers(func(*model.Player) bool { return true }), nil
}

func (s *Storage) FindPlayersByName(ctx context.Context, name string) ([]*model.Player, error) {
	return s.findPlayers(func(p *model.Player) bool { return p.Name == name }), nil
}

func (s *Storage) findPlayers(match func(*model.Player) bool) []*model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := []*model.Player{}
	for _, p := range s.players {
		if match(p) {
			copied := *p
			players = append(players, &copied)
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players
}
