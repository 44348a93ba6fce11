package classify

import (
	"testing"

	"github.com/masatokato67/kaigaigumi/internal/store"
)

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  Tier
	}{
		{"brace", Stats{Goals: 2, MinutesPlayed: 90, Rating: 6.0}, Excellent},
		{"goal and assist", Stats{Goals: 1, Assists: 1, MinutesPlayed: 90, Rating: 6.5}, Excellent},
		{"high rating sub", Stats{MinutesPlayed: 15, Rating: 8.0}, Excellent},
		{"single goal", Stats{Goals: 1, MinutesPlayed: 90, Rating: 5.0}, Good},
		{"single assist", Stats{Assists: 1, MinutesPlayed: 20, Rating: 6.0}, Good},
		{"two assists no goal", Stats{Assists: 2, MinutesPlayed: 90, Rating: 7.2}, Good},
		{"rating seven", Stats{MinutesPlayed: 30, Rating: 7.0}, Good},
		{"long mediocre outing", Stats{MinutesPlayed: 90, Rating: 6.4}, Average},
		{"short mediocre outing", Stats{MinutesPlayed: 59, Rating: 6.9}, Poor},
		{"low rating", Stats{MinutesPlayed: 90, Rating: 5.9}, Poor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.stats); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifyMonotonicInRating(t *testing.T) {
	for _, goals := range []int{0, 1, 2} {
		for _, assists := range []int{0, 1, 2} {
			for _, minutes := range []int{1, 45, 60, 90} {
				prev := Poor
				for r := 0; r <= 100; r++ {
					tier := Classify(Stats{Goals: goals, Assists: assists, MinutesPlayed: minutes, Rating: float64(r) / 10})
					if tier.Rank() < prev.Rank() {
						t.Fatalf("tier dropped from %s to %s at rating %.1f (g=%d a=%d m=%d)",
							prev, tier, float64(r)/10, goals, assists, minutes)
					}
					prev = tier
				}
			}
		}
	}
}

func TestMatchAndCount(t *testing.T) {
	matches := []store.Match{
		{PlayerStats: store.PlayerStats{Goals: 2, Assists: 1, MinutesPlayed: 90, Rating: 8.3}},
		{PlayerStats: store.PlayerStats{MinutesPlayed: 90, Rating: 6.5}},
		{PlayerStats: store.PlayerStats{MinutesPlayed: 10, Rating: 6.5}},
	}
	if got := Match(matches[0]); got != Excellent {
		t.Errorf("expected excellent, got %s", got)
	}

	counts := Count(matches)
	if counts[Excellent] != 1 || counts[Average] != 1 || counts[Poor] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if counts[Good] != 0 {
		t.Errorf("expected 0 good, got %d", counts[Good])
	}
}
