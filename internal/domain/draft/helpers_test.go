package draft_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	mockdice "github.com/KirkDiggler/civ-draft-bot/internal/dice/mock"
	"github.com/KirkDiggler/civ-draft-bot/internal/domain/draft"
)

// smallCatalog holds the three default bans plus four draftable civilizations:
// after creation the pool is Aztec, Babylon, Egypt, Iroquois.
func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Tier{
		{Label: "S", Civilizations: []string{"Babylon", "Egypt"}},
		{Label: "A", Civilizations: []string{"Huns", "Spain", "Aztec"}},
		{Label: "F", Civilizations: []string{"Venice", "Iroquois"}},
	})
	require.NoError(t, err)
	return cat
}

func newSmallLobby(t *testing.T, cfg draft.Config, rolls ...int) (*draft.Lobby, *mockdice.ManualMockRoller) {
	t.Helper()
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls(rolls)
	lobby, err := draft.New(&draft.LobbyConfig{
		ID:      "lobby-1",
		ScopeID: "guild-1",
		Config:  cfg,
		Catalog: smallCatalog(t),
		Roller:  roller,
	})
	require.NoError(t, err)
	return lobby, roller
}

func newDefaultLobby(t *testing.T, cfg draft.Config) *draft.Lobby {
	t.Helper()
	lobby, err := draft.New(&draft.LobbyConfig{
		ID:      "lobby-1",
		ScopeID: "guild-1",
		Config:  cfg,
	})
	require.NoError(t, err)
	return lobby
}
