package bdl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/courtside/hoopstats/internal/provider"
)

// NBAHandler fetches and normalizes NBA data from BallDontLie.
type NBAHandler struct {
	client *Client
	logger *slog.Logger
}

// NewNBAHandler creates an NBA handler on top of a configured client.
func NewNBAHandler(client *Client, logger *slog.Logger) *NBAHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NBAHandler{client: client, logger: logger}
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

type bdlTeamRaw struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

// GetTeams fetches all NBA teams in canonical format.
func (h *NBAHandler) GetTeams(ctx context.Context) ([]provider.Team, error) {
	records, err := h.client.FetchAll(ctx, "/teams", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch NBA teams: %w", err)
	}

	teams := make([]provider.Team, 0, len(records))
	for _, rec := range records {
		var raw bdlTeamRaw
		if err := json.Unmarshal(rec, &raw); err != nil {
			return nil, &TransportError{Path: "/teams", Err: fmt.Errorf("decode NBA team: %w", err)}
		}
		teams = append(teams, normalizeNBATeam(raw))
	}
	h.logger.Info("Teams created", "count", len(teams))
	return teams, nil
}

func normalizeNBATeam(raw bdlTeamRaw) provider.Team {
	return provider.Team{
		ID:           raw.ID,
		Abbreviation: raw.Abbreviation,
		City:         raw.City,
		Conference:   raw.Conference,
		Division:     raw.Division,
		FullName:     raw.FullName,
		Name:         raw.Name,
	}
}

// --------------------------------------------------------------------------
// Games (regular season only)
// --------------------------------------------------------------------------

type bdlGameRaw struct {
	ID               int        `json:"id"`
	HomeTeam         bdlTeamRaw `json:"home_team"`
	VisitorTeam      bdlTeamRaw `json:"visitor_team"`
	HomeTeamScore    int        `json:"home_team_score"`
	VisitorTeamScore int        `json:"visitor_team_score"`
	Season           int        `json:"season"`
	Postseason       bool       `json:"postseason"`
}

// GetSeasonGames fetches every regular-season game of a season.
func (h *NBAHandler) GetSeasonGames(ctx context.Context, season int) ([]provider.Game, error) {
	params := url.Values{
		"seasons[]":  {strconv.Itoa(season)},
		"postseason": {"false"},
		"per_page":   {strconv.Itoa(defaultPerPage)},
	}

	records, err := h.client.FetchAll(ctx, "/games", params)
	if err != nil {
		return nil, fmt.Errorf("fetch NBA games for season %d: %w", season, err)
	}

	games := make([]provider.Game, 0, len(records))
	for _, rec := range records {
		var raw bdlGameRaw
		if err := json.Unmarshal(rec, &raw); err != nil {
			return nil, &TransportError{Path: "/games", Err: fmt.Errorf("decode NBA game: %w", err)}
		}
		games = append(games, normalizeNBAGame(raw))
	}
	return games, nil
}

func normalizeNBAGame(raw bdlGameRaw) provider.Game {
	return provider.Game{
		ID:            raw.ID,
		HomeTeamID:    raw.HomeTeam.ID,
		VisitorTeamID: raw.VisitorTeam.ID,
		HomeScore:     raw.HomeTeamScore,
		VisitorScore:  raw.VisitorTeamScore,
		Season:        raw.Season,
		Postseason:    raw.Postseason,
	}
}

// --------------------------------------------------------------------------
// Players (search)
// --------------------------------------------------------------------------

type bdlPlayerRaw struct {
	ID           int         `json:"id"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Position     string      `json:"position"`
	HeightFeet   *int        `json:"height_feet"`
	HeightInches *int        `json:"height_inches"`
	WeightPounds *int        `json:"weight_pounds"`
	Team         *bdlTeamRaw `json:"team"`
}

// SearchPlayers returns every player the upstream search endpoint associates
// with query. The endpoint matches loosely, so callers are expected to filter
// the result.
func (h *NBAHandler) SearchPlayers(ctx context.Context, query string) ([]provider.Player, error) {
	params := url.Values{
		"search":   {query},
		"per_page": {strconv.Itoa(defaultPerPage)},
	}

	records, err := h.client.FetchAll(ctx, "/players", params)
	if err != nil {
		return nil, fmt.Errorf("search NBA players %q: %w", query, err)
	}

	players := make([]provider.Player, 0, len(records))
	for _, rec := range records {
		var raw bdlPlayerRaw
		if err := json.Unmarshal(rec, &raw); err != nil {
			return nil, &TransportError{Path: "/players", Err: fmt.Errorf("decode NBA player: %w", err)}
		}
		players = append(players, normalizeNBAPlayer(raw))
	}
	return players, nil
}

func normalizeNBAPlayer(raw bdlPlayerRaw) provider.Player {
	var teamID *int
	if raw.Team != nil {
		id := raw.Team.ID
		teamID = &id
	}
	return provider.Player{
		ID:           raw.ID,
		FirstName:    raw.FirstName,
		LastName:     raw.LastName,
		Position:     raw.Position,
		HeightFeet:   raw.HeightFeet,
		HeightInches: raw.HeightInches,
		WeightPounds: raw.WeightPounds,
		TeamID:       teamID,
	}
}
