package stats

import "github.com/courtside/hoopstats/internal/provider"

// Ranked is a player selected by an extremal query together with the value
// it was ranked on.
type Ranked struct {
	Player provider.Player `json:"player"`
	Value  Measure         `json:"value"`
}

// Tallest returns the tallest player with a known height. Ties go to the
// earliest player in input order. ok is false when no player has a height.
func Tallest(players []provider.Player) (Ranked, bool) {
	return maxBy(players, Height)
}

// Heaviest returns the heaviest player with a known weight, ranked by weight.
func Heaviest(players []provider.Player) (Ranked, bool) {
	return maxBy(players, Weight)
}

func maxBy(players []provider.Player, measure func(provider.Player) Measure) (Ranked, bool) {
	var best Ranked
	ok := false
	for _, p := range players {
		m := measure(p)
		if !m.Found {
			continue
		}
		if !ok || m.Value > best.Value.Value {
			best = Ranked{Player: p, Value: m}
			ok = true
		}
	}
	return best, ok
}
