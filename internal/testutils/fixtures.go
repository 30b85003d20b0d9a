package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/civ-draft-bot/internal/catalog"
	mockdice "github.com/KirkDiggler/civ-draft-bot/internal/dice/mock"
	"github.com/KirkDiggler/civ-draft-bot/internal/domain/draft"
)

// SmallCatalog holds the three default bans plus four draftable civilizations.
// A fresh lobby over it has Aztec, Babylon, Egypt and Iroquois in the pool.
func SmallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Tier{
		{Label: "S", Civilizations: []string{"Babylon", "Egypt"}},
		{Label: "A", Civilizations: []string{"Huns", "Spain", "Aztec"}},
		{Label: "F", Civilizations: []string{"Venice", "Iroquois"}},
	})
	require.NoError(t, err)
	return cat
}

// CreateTestLobby creates a lobby over SmallCatalog whose roller returns rolls in order
func CreateTestLobby(t *testing.T, scopeID string, cfg draft.Config, rolls ...int) (*draft.Lobby, *mockdice.ManualMockRoller) {
	t.Helper()
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls(rolls)
	lobby, err := draft.New(&draft.LobbyConfig{
		ID:      "lobby-" + scopeID,
		ScopeID: scopeID,
		Config:  cfg,
		Catalog: SmallCatalog(t),
		Roller:  roller,
	})
	require.NoError(t, err)
	return lobby, roller
}
