package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/hoopstats/internal/validate"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestTeamStatsRejectsSeasonBeforeFetching(t *testing.T) {
	err := execute(t, teamStatsCmd(), "--season", "1970")
	require.Error(t, err)
	vErr, ok := validate.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "season", vErr.Field)
}

func TestTeamStatsRejectsUnknownOutput(t *testing.T) {
	err := execute(t, teamStatsCmd(), "--season", "2021", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestTeamStatsRequiresSeason(t *testing.T) {
	err := execute(t, teamStatsCmd())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "season")
}

func TestPlayerStatsRejectsNumericName(t *testing.T) {
	err := execute(t, playerStatsCmd(), "--name", "123")
	require.Error(t, err)
	assert.EqualError(t, err, "Name cannot be a number.")
}

func TestPlayerStatsRejectsDisallowedCharacters(t *testing.T) {
	err := execute(t, playerStatsCmd(), "-n", "Le-Bron")
	require.Error(t, err)
	_, ok := validate.AsValidationError(err)
	assert.True(t, ok)
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "stdout, csv, json, sqlite, postgres", formatList())
}
