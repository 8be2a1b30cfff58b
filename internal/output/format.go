// Package output renders team tallies and player reports to the console,
// CSV/JSON files or a relational store.
package output

import (
	"fmt"
	"strings"
)

// Format selects where team-stats results go.
type Format string

const (
	FormatStdout   Format = "stdout"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatSQLite   Format = "sqlite"
	FormatPostgres Format = "postgres"
)

// Formats lists every accepted format in display order.
func Formats() []Format {
	return []Format{FormatStdout, FormatCSV, FormatJSON, FormatSQLite, FormatPostgres}
}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats()))
	for _, known := range Formats() {
		names = append(names, string(known))
	}
	return "", fmt.Errorf("unknown output %q (want one of %s)", s, strings.Join(names, ", "))
}
