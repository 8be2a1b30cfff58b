package stats

import (
	"sort"

	"github.com/courtside/hoopstats/internal/provider"
)

// DivisionGroup is a division and its member teams.
type DivisionGroup struct {
	Division string          `json:"division"`
	Teams    []provider.Team `json:"teams"`
}

// GroupByDivision buckets teams by division. Groups are sorted by division
// name; teams keep their input order within a group.
func GroupByDivision(teams []provider.Team) []DivisionGroup {
	index := make(map[string]int)
	var groups []DivisionGroup
	for _, t := range teams {
		i, ok := index[t.Division]
		if !ok {
			i = len(groups)
			index[t.Division] = i
			groups = append(groups, DivisionGroup{Division: t.Division})
		}
		groups[i].Teams = append(groups[i].Teams, t)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Division < groups[j].Division })
	return groups
}
