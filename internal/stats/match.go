package stats

import (
	"strings"

	"github.com/courtside/hoopstats/internal/provider"
)

// NormalizeQuery drops apostrophes from a player-name query. The upstream
// API stores names like "De'Marcus" as "DeMarcus".
func NormalizeQuery(query string) string {
	return strings.ReplaceAll(query, "'", "")
}

// MatchPlayers discards false positives from the upstream player search.
// A candidate is kept when its first name equals the normalized query or its
// last name contains it, both case-insensitively. This is deliberately loose:
// "Jordan" keeps both Jordan Bell and Michael Jordan.
func MatchPlayers(query string, candidates []provider.Player) []provider.Player {
	q := strings.ToLower(NormalizeQuery(query))
	matched := make([]provider.Player, 0, len(candidates))
	for _, p := range candidates {
		if strings.ToLower(p.FirstName) == q || strings.Contains(strings.ToLower(p.LastName), q) {
			matched = append(matched, p)
		}
	}
	return matched
}
