package lobbies_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/civ-draft-bot/internal/domain/draft"
	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
	"github.com/KirkDiggler/civ-draft-bot/internal/repositories/lobbies"
	"github.com/KirkDiggler/civ-draft-bot/internal/repositories/lobbies/mocks"
	"github.com/KirkDiggler/civ-draft-bot/internal/testutils"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         lobbies.Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
	ttl          time.Duration
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.ttl = time.Hour
	s.repo = lobbies.NewRedisRepository(&lobbies.RedisRepoConfig{
		Client:       s.mockClient,
		Catalog:      testutils.SmallCatalog(s.T()),
		TimeProvider: s.timeProvider,
		LobbyTTL:     s.ttl,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) lobbyJSON(lobby *draft.Lobby, at time.Time) string {
	data, err := json.Marshal(lobbies.Data{Lobby: lobby.Snapshot(), UpdatedAt: at})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	lobby, _ := testutils.CreateTestLobby(s.T(), "guild-1", draft.DefaultConfig())
	s.Require().True(lobby.Ban("<@1>", "Egypt").OK())
	expected := s.lobbyJSON(lobby, now)

	// Happy path
	s.timeProvider.EXPECT().Now().Return(now)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("lobby:guild-1", expected, s.ttl).SetVal("OK")
	s.mock.ExpectSAdd("lobbies", "guild-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.Save(ctx, lobby)
	s.NoError(err)

	// Dependency error
	s.timeProvider.EXPECT().Now().Return(now)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("lobby:guild-1", expected, s.ttl).SetErr(errors.New("redis error"))

	err = s.repo.Save(ctx, lobby)
	s.Error(err)

	// Input validation
	err = s.repo.Save(ctx, nil)
	s.Equal(apperr.CodeInvalidArgument, apperr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	lobby, _ := testutils.CreateTestLobby(s.T(), "guild-1", draft.DefaultConfig())
	s.Require().True(lobby.Ban("<@1>", "Egypt").OK())
	stored := s.lobbyJSON(lobby, time.Now().UTC())

	// Happy path refreshes the TTL
	s.mock.ExpectGet("lobby:guild-1").SetVal(stored)
	s.mock.ExpectExpire("lobby:guild-1", s.ttl).SetVal(true)

	got, err := s.repo.Get(ctx, "guild-1")
	s.Require().NoError(err)
	s.Equal(lobby.ID(), got.ID())
	s.Equal([]string{"<@1>"}, got.ParticipantIDs())
	s.False(got.IsAvailable("Egypt"))

	// Missing
	s.mock.ExpectGet("lobby:guild-2").RedisNil()

	_, err = s.repo.Get(ctx, "guild-2")
	s.True(apperr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("lobby:guild-1").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "guild-1")
	s.Error(err)
	s.False(apperr.IsNotFound(err))

	// Corrupt data
	s.mock.ExpectGet("lobby:guild-1").SetVal("{not json")

	_, err = s.repo.Get(ctx, "guild-1")
	s.Error(err)

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.Equal(apperr.CodeInvalidArgument, apperr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestGet_RejectsInconsistentSnapshot() {
	ctx := context.Background()
	lobby, _ := testutils.CreateTestLobby(s.T(), "guild-1", draft.DefaultConfig())
	s.Require().True(lobby.Ban("<@1>", "Egypt").OK())

	snap := lobby.Snapshot()
	snap.Pool["S"] = append(snap.Pool["S"], "Egypt")
	data, err := json.Marshal(lobbies.Data{Lobby: snap})
	s.Require().NoError(err)

	s.mock.ExpectGet("lobby:guild-1").SetVal(string(data))

	_, err = s.repo.Get(ctx, "guild-1")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	// Happy path
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("lobby:guild-1").SetVal(1)
	s.mock.ExpectSRem("lobbies", "guild-1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.Delete(ctx, "guild-1")
	s.NoError(err)

	// Missing
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("lobby:guild-2").SetVal(0)
	s.mock.ExpectSRem("lobbies", "guild-2").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	err = s.repo.Delete(ctx, "guild-2")
	s.True(apperr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestList_DependencyError() {
	s.mock.ExpectSMembers("lobbies").SetErr(errors.New("redis error"))

	_, err := s.repo.List(context.Background())
	s.Error(err)
}
