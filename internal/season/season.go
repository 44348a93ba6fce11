// Package season recomputes players' season aggregates from their matches.
package season

import (
	"fmt"
	"math"

	"github.com/masatokato67/kaigaigumi/internal/store"
)

// Change records a player's aggregates before and after recomputation.
type Change struct {
	PlayerID string
	Name     string
	Before   store.SeasonStats
	After    store.SeasonStats
}

// Recompute rewrites SeasonStats in place for every player, or only for
// playerID when it is non-empty. The season label is preserved.
func Recompute(players []store.Player, matches []store.Match, media []store.MatchMediaData, playerID string) ([]Change, error) {
	var changes []Change
	for i := range players {
		p := &players[i]
		if playerID != "" && p.ID != playerID {
			continue
		}
		after := Aggregate(p.ID, matches, media)
		after.Season = p.SeasonStats.Season
		changes = append(changes, Change{PlayerID: p.ID, Name: p.Name.JA, Before: p.SeasonStats, After: after})
		p.SeasonStats = after
	}
	if playerID != "" && len(changes) == 0 {
		return nil, fmt.Errorf("player not found: %s", playerID)
	}
	return changes, nil
}

// Aggregate sums a player's matches. The average rating is the mean of the
// player's positive media averages, rounded to one decimal.
func Aggregate(playerID string, matches []store.Match, media []store.MatchMediaData) store.SeasonStats {
	var s store.SeasonStats
	for _, m := range matches {
		if m.PlayerID != playerID {
			continue
		}
		s.Appearances++
		s.Goals += m.PlayerStats.Goals
		s.Assists += m.PlayerStats.Assists
		s.MinutesPlayed += m.PlayerStats.MinutesPlayed
	}

	var total float64
	var n int
	for _, md := range media {
		if md.PlayerID != playerID || md.AverageRating <= 0 {
			continue
		}
		total += md.AverageRating
		n++
	}
	if n > 0 {
		s.AverageRating = math.Round(total/float64(n)*10) / 10
	}
	return s
}
