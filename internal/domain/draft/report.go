package draft

import (
	"fmt"
	"strings"
)

// InfoReport summarizes the lobby limits
func (l *Lobby) InfoReport() string {
	return fmt.Sprintf("Lobby Information: %d Players, %d Bans, %d Picks.",
		l.config.Capacity, l.config.BanQuota, l.config.PickQuota)
}

// CreatedReport announces a freshly created lobby
func (l *Lobby) CreatedReport() string {
	return fmt.Sprintf("Initializing a new lobby...\n"+
		"###### NEW GAME ######\n"+
		"Created a new lobby for %d players!\n"+
		"Each player can ban %d and pick %d civilizations.\n%s",
		l.config.Capacity, l.config.BanQuota, l.config.PickQuota, l.defaultBanNotice)
}

// PlayersReport lists registered participants
func (l *Lobby) PlayersReport() string {
	players := strings.Join(l.registry.List(), ",")
	if players == "" {
		players = "None."
	}
	return "Registered Players: " + players
}

// PoolReport lists the available civilizations tier by tier
func (l *Lobby) PoolReport() string {
	var b strings.Builder
	b.WriteString("AVAILABLE POOL")
	for _, tier := range l.catalog.Tiers() {
		items, _ := l.pool.Tier(tier)
		fmt.Fprintf(&b, "\nTier %s: %s", tier, strings.Join(items, ", "))
	}
	return b.String()
}

// BansReport lists every participant's bans in registration order
func (l *Lobby) BansReport() string {
	var b strings.Builder
	b.WriteString("BANS: ")
	for i, p := range l.registry.participants {
		bans := strings.Join(p.bans, ", ")
		if bans == "" {
			bans = "None."
		}
		fmt.Fprintf(&b, "\nPlayer %d - %s: %s", i+1, p.ID, bans)
	}
	return b.String()
}

// PicksReport lists every participant's drafted civilizations in registration order
func (l *Lobby) PicksReport() string {
	var b strings.Builder
	b.WriteString("DRAFT RESULTS:")
	for i, p := range l.registry.participants {
		fmt.Fprintf(&b, "\nPlayer %d - %s: %s", i+1, p.ID, strings.Join(p.picks, ", "))
	}
	b.WriteString("\nRemember, nuclear is the answer.")
	return b.String()
}
