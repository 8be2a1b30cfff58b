// Package provider defines canonical data types that the BallDontLie handlers
// normalize into. These structs are the contract between the fetch layer and
// the stats pipeline. Handlers output these and the aggregator and selectors
// consume them.
package provider

import "fmt"

// Team is the canonical team shape.
type Team struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

// DisplayName is the label used for the team in tallies, e.g.
// "Boston Celtics (BOS)".
func (t Team) DisplayName() string {
	return fmt.Sprintf("%s %s (%s)", t.City, t.Name, t.Abbreviation)
}

// Game is a single finished (or scheduled) game. The outcome is never stored;
// it is derived from the two scores.
type Game struct {
	ID            int  `json:"id"`
	HomeTeamID    int  `json:"home_team_id"`
	VisitorTeamID int  `json:"visitor_team_id"`
	HomeScore     int  `json:"home_team_score"`
	VisitorScore  int  `json:"visitor_team_score"`
	Season        int  `json:"season"`
	Postseason    bool `json:"postseason"`
}

// Player is the canonical player shape. Height and weight are nil when the
// upstream record has no value.
type Player struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position,omitempty"`
	HeightFeet   *int   `json:"height_feet,omitempty"`
	HeightInches *int   `json:"height_inches,omitempty"`
	WeightPounds *int   `json:"weight_pounds,omitempty"`
	TeamID       *int   `json:"team_id,omitempty"`
}

// FullName joins first and last name.
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
