package lobby_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdice "github.com/KirkDiggler/civ-draft-bot/internal/dice/mock"
	"github.com/KirkDiggler/civ-draft-bot/internal/domain/draft"
	apperr "github.com/KirkDiggler/civ-draft-bot/internal/errors"
	"github.com/KirkDiggler/civ-draft-bot/internal/repositories/lobbies"
	"github.com/KirkDiggler/civ-draft-bot/internal/repositories/lobbies/mocks"
	"github.com/KirkDiggler/civ-draft-bot/internal/services/lobby"
	"github.com/KirkDiggler/civ-draft-bot/internal/testutils"
	"github.com/KirkDiggler/civ-draft-bot/internal/uuid"
)

const scope = "guild-1"

func newTestService(t *testing.T) (lobby.Service, *mockdice.ManualMockRoller) {
	t.Helper()
	cat := testutils.SmallCatalog(t)
	roller := mockdice.NewManualMockRoller()
	svc := lobby.NewService(&lobby.ServiceConfig{
		Repository: lobbies.NewInMemoryRepository(&lobbies.InMemoryConfig{
			Catalog: cat,
			Roller:  roller,
		}),
		Catalog:       cat,
		Roller:        roller,
		UUIDGenerator: uuid.NewSequenceGenerator("lobby"),
	})
	return svc, roller
}

func TestNewService_RequiresRepository(t *testing.T) {
	assert.Panics(t, func() {
		lobby.NewService(&lobby.ServiceConfig{})
	})
}

func TestService_DefaultLobbyIsCreatedOnFirstUse(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	info, err := svc.Info(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "Lobby Information: 4 Players, 2 Bans, 3 Picks.", info)

	l, err := svc.GetLobby(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "lobby-1", l.ID(), "the default lobby is created once")
	assert.Equal(t, []string{"Aztec", "Babylon", "Egypt", "Iroquois"}, l.AvailableItems())
}

func TestService_CreateLobby(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, scope, "<@1>")
	require.NoError(t, err)

	result, err := svc.CreateLobby(ctx, &lobby.CreateLobbyInput{ScopeID: scope, Capacity: 2, BanQuota: 1})
	require.NoError(t, err)
	assert.Equal(t, "Initializing a new lobby...\n"+
		"###### NEW GAME ######\n"+
		"Created a new lobby for 2 players!\n"+
		"Each player can ban 1 and pick 3 civilizations.\n"+
		"Huns, Venice, and Spain are automatically banned.", result.Message)
	assert.Equal(t, "lobby-2", result.Lobby.ID())

	players, err := svc.Players(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "Registered Players: None.", players, "the new lobby replaces the old one")
}

func TestService_CreateLobbyValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	testCases := []struct {
		name  string
		input *lobby.CreateLobbyInput
	}{
		{name: "nil input", input: nil},
		{name: "missing scope", input: &lobby.CreateLobbyInput{Capacity: 2}},
		{name: "negative capacity", input: &lobby.CreateLobbyInput{ScopeID: scope, Capacity: -1}},
		{name: "negative picks", input: &lobby.CreateLobbyInput{ScopeID: scope, PickQuota: -3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateLobby(ctx, tc.input)
			assert.Equal(t, apperr.CodeInvalidArgument, apperr.GetCode(err))
		})
	}
}

func TestService_RegisterUnregisterPlayers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	msg, err := svc.Register(ctx, scope, "<@1>")
	require.NoError(t, err)
	assert.Equal(t, "<@1> joined the active lobby.", msg)

	msg, err = svc.Register(ctx, scope, "<@1>")
	require.NoError(t, err)
	assert.Equal(t, "WARNING: <@1> is already in the lobby.", msg)

	_, err = svc.Register(ctx, scope, "<@2>")
	require.NoError(t, err)

	players, err := svc.Players(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "Registered Players: <@1>,<@2>", players)

	msg, err = svc.Unregister(ctx, scope, "<@1>")
	require.NoError(t, err)
	assert.Equal(t, "<@1> left the active lobby.", msg)

	msg, err = svc.Unregister(ctx, scope, "<@1>")
	require.NoError(t, err)
	assert.Equal(t, "WARNING: Can't unregister <@1>; not registered.", msg)
}

func TestService_BanTwoCivilizations(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	msg, err := svc.Ban(ctx, scope, "<@1>", "egypt", " aztec ")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE:\n<@1> banned Egypt.\n<@1> banned Aztec.", msg)

	bans, err := svc.Bans(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "BANS: \nPlayer 1 - <@1>: Egypt, Aztec", bans)

	pool, err := svc.Pool(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "AVAILABLE POOL\nTier S: Babylon\nTier A: \nTier F: Iroquois", pool)
}

func TestService_BanFailuresAreStatusLines(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	msg, err := svc.Ban(ctx, scope, "<@1>", "Rome", "Huns")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE:\n"+
		"ERROR: Can't ban 'Rome'; not a valid civilization.\n"+
		"ERROR: Can't ban 'Huns'; not within the available pool.", msg)

	_, err = svc.Ban(ctx, scope, "<@1>")
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.GetCode(err))
}

func TestService_BanRandom(t *testing.T) {
	ctx := context.Background()
	svc, roller := newTestService(t)
	roller.SetRolls([]int{1, 1})

	msg, err := svc.Ban(ctx, scope, "<@1>", "random", "Random")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE:\n<@1> banned Aztec.\n<@1> banned Babylon.", msg,
		"the second random ban is drawn after the first one left the pool")
}

func TestService_BanRandomFromEmptyPool(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateLobby(ctx, &lobby.CreateLobbyInput{ScopeID: scope, Capacity: 3, BanQuota: 2, PickQuota: 1})
	require.NoError(t, err)
	_, err = svc.Ban(ctx, scope, "<@1>", "Aztec", "Babylon")
	require.NoError(t, err)
	_, err = svc.Ban(ctx, scope, "<@2>", "Egypt", "Iroquois")
	require.NoError(t, err)

	msg, err := svc.Ban(ctx, scope, "<@3>", "Random")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE:\nERROR: Can't ban a random civilization; the pool is empty.", msg)

	players, err := svc.Players(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "Registered Players: <@1>,<@2>", players)
}

func TestService_UnbanTwoCivilizations(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Ban(ctx, scope, "<@1>", "Egypt", "Aztec")
	require.NoError(t, err)

	msg, err := svc.Unban(ctx, scope, "<@1>", "egypt", "Aztec")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE:\n<@1> unbanned Egypt.\n<@1> unbanned Aztec.", msg)

	items, err := svc.PoolItems(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aztec", "Babylon", "Egypt", "Iroquois"}, items)

	msg, err = svc.Unban(ctx, scope, "<@1>", "Babylon")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE:\nERROR: Can't unban Babylon; <@1> did not ban it.", msg)
}

func TestService_DraftAndRedraft(t *testing.T) {
	ctx := context.Background()
	svc, roller := newTestService(t)

	_, err := svc.CreateLobby(ctx, &lobby.CreateLobbyInput{ScopeID: scope, Capacity: 2, BanQuota: 1, PickQuota: 2})
	require.NoError(t, err)
	_, err = svc.Register(ctx, scope, "<@A>")
	require.NoError(t, err)
	_, err = svc.Register(ctx, scope, "<@B>")
	require.NoError(t, err)

	roller.SetRolls([]int{2, 1, 2, 1})
	msg, err := svc.Draft(ctx, scope)
	require.NoError(t, err)
	expected := "DRAFT RESULTS:\n" +
		"Player 1 - <@A>: Babylon, Aztec\n" +
		"Player 2 - <@B>: Iroquois, Egypt\n" +
		"Remember, nuclear is the answer."
	assert.Equal(t, expected, msg)

	picks, err := svc.Picks(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, expected, picks)

	roller.SetRolls([]int{1, 1, 1, 1})
	msg, err = svc.Redraft(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "DRAFT RESULTS:\n"+
		"Player 1 - <@A>: Aztec, Babylon\n"+
		"Player 2 - <@B>: Egypt, Iroquois\n"+
		"Remember, nuclear is the answer.", msg)
}

func TestService_DraftExhaustedPoolIsReported(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, scope, "<@A>")
	require.NoError(t, err)
	_, err = svc.Register(ctx, scope, "<@B>")
	require.NoError(t, err)

	msg, err := svc.Draft(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "ERROR: Can't draft; 6 civilizations needed but only 4 available.", msg)

	items, err := svc.PoolItems(ctx, scope)
	require.NoError(t, err)
	assert.Len(t, items, 4, "a refused draft leaves the pool alone")
}

func TestService_DraftRollerFailureIsAnError(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateLobby(ctx, &lobby.CreateLobbyInput{ScopeID: scope, PickQuota: 1})
	require.NoError(t, err)
	_, err = svc.Register(ctx, scope, "<@A>")
	require.NoError(t, err)

	// no rolls queued
	_, err = svc.Draft(ctx, scope)
	assert.Error(t, err)

	items, err := svc.PoolItems(ctx, scope)
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestService_ConcurrentRegistrationRespectsCapacity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Register(ctx, scope, fmt.Sprintf("<@%d>", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	l, err := svc.GetLobby(ctx, scope)
	require.NoError(t, err)
	assert.Len(t, l.ParticipantIDs(), 4)
}

func TestService_ScopesAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Ban(ctx, "guild-1", "<@1>", "Egypt")
	require.NoError(t, err)

	items, err := svc.PoolItems(ctx, "guild-2")
	require.NoError(t, err)
	assert.Contains(t, items, "Egypt")
}

func TestService_RepositoryFailures(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := lobby.NewService(&lobby.ServiceConfig{
		Repository: repo,
		Catalog:    testutils.SmallCatalog(t),
	})

	t.Run("get fails", func(t *testing.T) {
		repo.EXPECT().Get(ctx, scope).Return(nil, errors.New("redis down"))

		_, err := svc.Info(ctx, scope)
		assert.ErrorContains(t, err, "redis down")
	})

	t.Run("save of the default lobby fails", func(t *testing.T) {
		repo.EXPECT().Get(ctx, scope).Return(nil, apperr.NotFoundf("lobby not found for scope %s", scope))
		repo.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("redis down"))

		_, err := svc.Register(ctx, scope, "<@1>")
		assert.ErrorContains(t, err, "failed to save lobby")
	})

	t.Run("save after mutation fails", func(t *testing.T) {
		existing, _ := testutils.CreateTestLobby(t, scope, lobbyConfig())
		repo.EXPECT().Get(ctx, scope).Return(existing, nil)
		repo.EXPECT().Save(ctx, existing).Return(errors.New("redis down"))

		_, err := svc.Register(ctx, scope, "<@1>")
		assert.Error(t, err)
	})

	t.Run("missing scope", func(t *testing.T) {
		_, err := svc.Players(ctx, " ")
		assert.Equal(t, apperr.CodeInvalidArgument, apperr.GetCode(err))
	})
}

func lobbyConfig() draft.Config {
	return draft.DefaultConfig()
}

func TestService_RollerDrivesRestoredLobbies(t *testing.T) {
	ctx := context.Background()
	cat := testutils.SmallCatalog(t)
	roller := mockdice.NewManualMockRoller()
	svc := lobby.NewService(&lobby.ServiceConfig{
		Repository: lobbies.NewInMemoryRepository(&lobbies.InMemoryConfig{Catalog: cat}),
		Catalog:    cat,
		Roller:     roller,
	})

	_, err := svc.CreateLobby(ctx, &lobby.CreateLobbyInput{ScopeID: scope, Capacity: 1, BanQuota: 1, PickQuota: 3})
	require.NoError(t, err)

	roller.SetRolls([]int{1})
	msg, err := svc.Ban(ctx, scope, "<@A>", lobby.RandomOption)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE:\n<@A> banned Aztec.", msg)

	roller.SetRolls([]int{1, 1, 1})
	msg, err = svc.Draft(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, "DRAFT RESULTS:\n"+
		"Player 1 - <@A>: Babylon, Egypt, Iroquois\n"+
		"Remember, nuclear is the answer.", msg)
	assert.Zero(t, roller.Remaining())
}
