// Package classify grades a match performance into one of four tiers.
package classify

import "github.com/masatokato67/kaigaigumi/internal/store"

// Tier is a performance level.
type Tier string

const (
	Excellent Tier = "excellent"
	Good      Tier = "good"
	Average   Tier = "average"
	Poor      Tier = "poor"
)

// Tiers lists every tier from best to worst.
var Tiers = []Tier{Excellent, Good, Average, Poor}

// Rank orders tiers: higher is better.
func (t Tier) Rank() int {
	switch t {
	case Excellent:
		return 3
	case Good:
		return 2
	case Average:
		return 1
	default:
		return 0
	}
}

// Stats is the subset of a match used for grading.
type Stats struct {
	Goals         int
	Assists       int
	MinutesPlayed int
	Rating        float64
}

// Classify returns the tier. Rules are evaluated in order and the first match
// wins, so a high rating off the bench still grades excellent.
func Classify(s Stats) Tier {
	switch {
	case s.Goals >= 2 || (s.Goals >= 1 && s.Assists >= 1) || s.Rating >= 8.0:
		return Excellent
	case s.Goals >= 1 || s.Assists >= 1 || s.Rating >= 7.0:
		return Good
	case s.Rating >= 6.0 && s.MinutesPlayed >= 60:
		return Average
	default:
		return Poor
	}
}

// Match classifies a stored match.
func Match(m store.Match) Tier {
	return Classify(Stats{
		Goals:         m.PlayerStats.Goals,
		Assists:       m.PlayerStats.Assists,
		MinutesPlayed: m.PlayerStats.MinutesPlayed,
		Rating:        m.PlayerStats.Rating,
	})
}

// Count tallies tiers over matches.
func Count(matches []store.Match) map[Tier]int {
	counts := make(map[Tier]int, len(Tiers))
	for _, m := range matches {
		counts[Match(m)]++
	}
	return counts
}
