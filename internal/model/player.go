package model

// SteamID identifies a player account on Steam. It is treated as opaque:
// the only requirement is that it is non-empty.
type SteamID string

// DefaultSteamID is the account the bundled fixture documents were recorded for
const DefaultSteamID SteamID = "76561198068135033"

// IsZero reports whether no identifier was supplied
func (id SteamID) IsZero() bool {
	return id == ""
}

// Fixture document names served from the assets directory
const (
	PlayerStatsFixture  = "steam_player_stats_" + string(DefaultSteamID) + ".json"
	AchievementsFixture = "steam_achievements_" + string(DefaultSteamID) + ".json"
	PcsrProfileFixture  = "steam_pcsr_profile.json"
)
