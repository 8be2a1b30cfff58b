package bdl

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTeamsNormalizes(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/v1/teams", req.URL.Path)
		return jsonResponse(http.StatusOK, `{
			"data": [
				{"id": 2, "abbreviation": "BOS", "city": "Boston", "conference": "East",
				 "division": "Atlantic", "full_name": "Boston Celtics", "name": "Celtics"}
			],
			"meta": {"next_page": null, "total_pages": 1, "total_count": 1}
		}`), nil
	})

	teams, err := NewNBAHandler(client, nil).GetTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, 2, teams[0].ID)
	assert.Equal(t, "Atlantic", teams[0].Division)
	assert.Equal(t, "Boston Celtics (BOS)", teams[0].DisplayName())
}

func TestGetSeasonGamesSendsSeasonFilter(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		q := req.URL.Query()
		assert.Equal(t, "/v1/games", req.URL.Path)
		assert.Equal(t, "2019", q.Get("seasons[]"))
		assert.Equal(t, "false", q.Get("postseason"))
		assert.Equal(t, "100", q.Get("per_page"))
		return jsonResponse(http.StatusOK, `{
			"data": [
				{"id": 9, "home_team": {"id": 1}, "visitor_team": {"id": 2},
				 "home_team_score": 100, "visitor_team_score": 90, "season": 2019, "postseason": false}
			],
			"meta": {"next_page": null, "total_pages": 1}
		}`), nil
	})

	games, err := NewNBAHandler(client, nil).GetSeasonGames(context.Background(), 2019)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 1, games[0].HomeTeamID)
	assert.Equal(t, 2, games[0].VisitorTeamID)
	assert.Equal(t, 100, games[0].HomeScore)
	assert.Equal(t, 90, games[0].VisitorScore)
}

func TestSearchPlayersKeepsMissingMeasurementsNil(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "De Marcus", req.URL.Query().Get("search"))
		return jsonResponse(http.StatusOK, `{
			"data": [
				{"id": 1, "first_name": "Michael", "last_name": "Jordan", "height_feet": 6,
				 "height_inches": 6, "weight_pounds": 195, "team": {"id": 5}},
				{"id": 2, "first_name": "Jordan", "last_name": "Bell", "height_feet": null,
				 "height_inches": null, "weight_pounds": null, "team": null}
			],
			"meta": {"next_page": null, "total_pages": 1}
		}`), nil
	})

	players, err := NewNBAHandler(client, nil).SearchPlayers(context.Background(), "De Marcus")
	require.NoError(t, err)
	require.Len(t, players, 2)

	require.NotNil(t, players[0].HeightFeet)
	assert.Equal(t, 6, *players[0].HeightFeet)
	require.NotNil(t, players[0].TeamID)
	assert.Equal(t, 5, *players[0].TeamID)

	assert.Nil(t, players[1].HeightFeet)
	assert.Nil(t, players[1].HeightInches)
	assert.Nil(t, players[1].WeightPounds)
	assert.Nil(t, players[1].TeamID)
}

func TestGetTeamsWrapsTransportError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, "down"), nil
	})

	_, err := NewNBAHandler(client, nil).GetTeams(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch NBA teams")
	_, ok := AsTransportError(err)
	assert.True(t, ok)
}
