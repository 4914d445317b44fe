package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/slaz/gameservices/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Game tests

func (s *StorageSuite) TestSaveGameAssignsSequentialIDs() {
	first := &model.Game{Name: "chess", Status: model.GameStatusNew}
	second := &model.Game{Name: "go", Status: model.GameStatusNew}

	s.Require().NoError(s.storage.SaveGame(s.ctx, first))
	s.Require().NoError(s.storage.SaveGame(s.ctx, second))

	s.Equal(model.GameID(1), first.ID)
	s.Equal(model.GameID(2), second.ID)
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		Name:      "chess",
		Status:    model.GameStatusInProgress,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.Name, retrieved.Name)
	s.Equal(game.Status, retrieved.Status)
	s.True(game.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, 42)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGameRemovesRecordAndIndexEntry() {
	game := &model.Game{Name: "chess", Status: model.GameStatusNew}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.Require().NoError(s.storage.DeleteGame(s.ctx, game.ID))

	_, err := s.storage.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *StorageSuite) TestListGamesOrderedByID() {
	for _, name := range []string{"a", "b", "c"} {
		s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{Name: name, Status: model.GameStatusNew}))
	}

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 3)
	s.Equal("a", games[0].Name)
	s.Equal("b", games[1].Name)
	s.Equal("c", games[2].Name)
}

func (s *StorageSuite) TestFindGamesByName() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{Name: "chess", Status: model.GameStatusNew}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{Name: "go", Status: model.GameStatusNew}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{Name: "chess", Status: model.GameStatusFinished}))

	games, err := s.storage.FindGamesByName(s.ctx, "chess")
	s.Require().NoError(err)
	s.Len(games, 2)
}

func (s *StorageSuite) TestFindGamesByStatus() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{Name: "chess", Status: model.GameStatusNew}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{Name: "go", Status: model.GameStatusFinished}))

	games, err := s.storage.FindGamesByStatus(s.ctx, model.GameStatusFinished)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal("go", games[0].Name)
}

func (s *StorageSuite) TestFindGamesByNameAndStatus() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{Name: "chess", Status: model.GameStatusNew}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{Name: "chess", Status: model.GameStatusFinished}))

	games, err := s.storage.FindGamesByNameAndStatus(s.ctx, "chess", model.GameStatusFinished)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(model.GameStatusFinished, games[0].Status)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		Name:      "alice",
		GameID:    3,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))
	s.Equal(model.PlayerID(1), player.ID)

	retrieved, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Name)
	s.Equal(model.GameID(3), retrieved.GameID)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, 42)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{Name: "alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	s.Require().NoError(s.storage.DeletePlayer(s.ctx, player.ID))

	_, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestFindPlayersByName() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{Name: "alice", GameID: 1}))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{Name: "alice", GameID: 2}))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{Name: "bob"}))

	players, err := s.storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestGameAndPlayerSequencesAreIndependent() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{Name: "chess", Status: model.GameStatusNew}))
	player := &model.Player{Name: "alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	s.Equal(model.PlayerID(1), player.ID)
}
