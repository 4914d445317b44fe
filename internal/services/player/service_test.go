package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/slaz/gameservices/internal/dependencies/mocks"
	"github.com/slaz/gameservices/internal/model"
	"github.com/slaz/gameservices/internal/storage/memory"
	"github.com/slaz/gameservices/internal/testutil"
)

// fakeGames answers existence probes from a fixed set
type fakeGames struct {
	existing map[model.GameID]bool
	down     bool
}

func (f *fakeGames) GameExists(_ context.Context, id model.GameID) bool {
	if f.down {
		return false
	}
	return f.existing[id]
}

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	games   *fakeGames
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.games = &fakeGames{existing: map[model.GameID]bool{}}
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.games, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// Admission

func (s *ServiceSuite) TestCreatePlayerUnlinked() {
	player, err := s.service.CreatePlayer(s.ctx, "alice", model.UnlinkedGame)

	s.Require().NoError(err)
	s.Equal("alice", player.Name)
	s.Equal(model.UnlinkedGame, player.GameID)
	s.False(player.Linked())
	s.Equal(s.clock.Now(), player.CreatedAt)
}

func (s *ServiceSuite) TestCreatePlayerWithVerifiedGame() {
	s.games.existing[7] = true

	player, err := s.service.CreatePlayer(s.ctx, "alice", 7)

	s.Require().NoError(err)
	s.Equal(model.GameID(7), player.GameID)
	s.True(player.Linked())
}

func (s *ServiceSuite) TestCreatePlayerDegradesWhenGameAbsent() {
	player, err := s.service.CreatePlayer(s.ctx, "alice", 7)

	s.Require().NoError(err)
	s.Equal(model.UnlinkedGame, player.GameID)
}

func (s *ServiceSuite) TestCreatePlayerDegradesWhenGameServiceDown() {
	s.games.existing[7] = true
	s.games.down = true

	player, err := s.service.CreatePlayer(s.ctx, "alice", 7)

	s.Require().NoError(err)
	s.Equal(model.UnlinkedGame, player.GameID)
}

// Name uniqueness for unlinked players

func (s *ServiceSuite) TestCreatePlayerRejectsSecondUnlinkedName() {
	_, err := s.service.CreatePlayer(s.ctx, "alice", model.UnlinkedGame)
	s.Require().NoError(err)

	_, err = s.service.CreatePlayer(s.ctx, "alice", model.UnlinkedGame)
	s.ErrorIs(err, model.ErrDuplicatePlayerName)
}

func (s *ServiceSuite) TestCreatePlayerDegradedClaimHitsUniquenessRule() {
	_, err := s.service.CreatePlayer(s.ctx, "alice", model.UnlinkedGame)
	s.Require().NoError(err)

	// The claimed game does not exist, so the request degrades to unlinked
	// and collides with the existing unlinked alice.
	_, err = s.service.CreatePlayer(s.ctx, "alice", 7)
	s.ErrorIs(err, model.ErrDuplicatePlayerName)
}

func (s *ServiceSuite) TestLinkedPlayersExemptFromUniqueness() {
	s.games.existing[7] = true

	_, err := s.service.CreatePlayer(s.ctx, "alice", 7)
	s.Require().NoError(err)

	// A linked alice does not block an unlinked one, and vice versa
	_, err = s.service.CreatePlayer(s.ctx, "alice", model.UnlinkedGame)
	s.Require().NoError(err)

	_, err = s.service.CreatePlayer(s.ctx, "alice", 7)
	s.Require().NoError(err)
}

// Registration

func (s *ServiceSuite) TestRegisterPlayerCreates() {
	created, err := s.service.RegisterPlayer(s.ctx, "alice", 3)

	s.Require().NoError(err)
	s.True(created)

	players, err := s.storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.GameID(3), players[0].GameID)
}

func (s *ServiceSuite) TestRegisterPlayerIdempotentOnExactPair() {
	created, err := s.service.RegisterPlayer(s.ctx, "alice", 3)
	s.Require().NoError(err)
	s.True(created)

	created, err = s.service.RegisterPlayer(s.ctx, "alice", 3)
	s.Require().NoError(err)
	s.False(created)

	players, err := s.storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *ServiceSuite) TestRegisterPlayerSameNameDifferentGame() {
	created, err := s.service.RegisterPlayer(s.ctx, "alice", 3)
	s.Require().NoError(err)
	s.True(created)

	created, err = s.service.RegisterPlayer(s.ctx, "alice", 4)
	s.Require().NoError(err)
	s.True(created)

	players, err := s.storage.FindPlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *ServiceSuite) TestRegisterPlayerSkipsAdmissionChecks() {
	// Registration neither probes the game service nor applies the
	// uniqueness rule; the saga owns the game id it sends.
	_, err := s.service.CreatePlayer(s.ctx, "alice", model.UnlinkedGame)
	s.Require().NoError(err)

	created, err := s.service.RegisterPlayer(s.ctx, "alice", model.UnlinkedGame)
	s.Require().NoError(err)
	s.False(created)
}

// CRUD

func (s *ServiceSuite) TestGetPlayerNotFound() {
	_, err := s.service.GetPlayer(s.ctx, 42)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestListPlayers() {
	_, err := s.service.CreatePlayer(s.ctx, "alice", model.UnlinkedGame)
	s.Require().NoError(err)
	_, err = s.service.CreatePlayer(s.ctx, "bob", model.UnlinkedGame)
	s.Require().NoError(err)

	players, err := s.service.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *ServiceSuite) TestPlayersByName() {
	s.games.existing[1] = true
	s.games.existing[2] = true
	_, err := s.service.CreatePlayer(s.ctx, "alice", 1)
	s.Require().NoError(err)
	_, err = s.service.CreatePlayer(s.ctx, "alice", 2)
	s.Require().NoError(err)
	_, err = s.service.CreatePlayer(s.ctx, "bob", model.UnlinkedGame)
	s.Require().NoError(err)

	players, err := s.service.PlayersByName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *ServiceSuite) TestDeletePlayer() {
	player, err := s.service.CreatePlayer(s.ctx, "alice", model.UnlinkedGame)
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeletePlayer(s.ctx, player.ID))

	_, err = s.service.GetPlayer(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeletePlayerNotFound() {
	err := s.service.DeletePlayer(s.ctx, 42)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Name resolution

func (s *ServiceSuite) TestGameIDsByPlayerNameIncludesDuplicates() {
	s.games.existing[3] = true
	_, err := s.service.CreatePlayer(s.ctx, "alice", 3)
	s.Require().NoError(err)
	created, err := s.service.RegisterPlayer(s.ctx, "alice", 3)
	s.Require().NoError(err)
	s.False(created)

	// Two distinct alices, one linked and one not
	_, err = s.service.CreatePlayer(s.ctx, "alice", model.UnlinkedGame)
	s.Require().NoError(err)

	ids, err := s.service.GameIDsByPlayerName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal([]model.GameID{3, model.UnlinkedGame}, ids)
}

func (s *ServiceSuite) TestGameIDsByPlayerNameUnknownName() {
	ids, err := s.service.GameIDsByPlayerName(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(ids)
}
