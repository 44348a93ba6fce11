// Package reconcile merges freshly fetched matches into the persisted
// collection without ever admitting a duplicate match id.
package reconcile

import (
	"sort"
	"strings"

	"github.com/masatokato67/kaigaigumi/internal/store"
)

// MatchID derives the stable identifier {playerId}-{YYYYMMDD}.
func MatchID(playerID, date string) string {
	return playerID + "-" + strings.ReplaceAll(date, "-", "")
}

// Result describes one merge.
type Result struct {
	Matches []store.Match // merged collection, date descending
	Added   []store.Match // incoming matches that were admitted, in input order
}

// AddedIDs returns the ids of admitted matches.
func (r *Result) AddedIDs() []string {
	ids := make([]string, len(r.Added))
	for i, m := range r.Added {
		ids[i] = m.MatchID
	}
	return ids
}

// Reconcile appends every incoming match whose id is not already known.
// Incoming ids are always derived from player and date.
// Duplicates within incoming are dropped after the first occurrence. The
// merged slice is sorted by date descending; existing order breaks ties.
func Reconcile(existing, incoming []store.Match) *Result {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]store.Match, 0, len(existing)+len(incoming))
	for _, m := range existing {
		seen[m.MatchID] = struct{}{}
		merged = append(merged, m)
	}

	var added []store.Match
	for _, m := range incoming {
		m.MatchID = MatchID(m.PlayerID, m.Date)
		if _, ok := seen[m.MatchID]; ok {
			continue
		}
		seen[m.MatchID] = struct{}{}
		merged = append(merged, m)
		added = append(added, m)
	}

	SortByDate(merged)
	return &Result{Matches: merged, Added: added}
}

// SortByDate orders matches by ISO date, newest first. The sort is stable.
func SortByDate(matches []store.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date > matches[j].Date
	})
}
