package season

import (
	"testing"

	"github.com/masatokato67/kaigaigumi/internal/store"
)

func fixtures() ([]store.Player, []store.Match, []store.MatchMediaData) {
	players := []store.Player{
		{ID: "mitoma", SeasonStats: store.SeasonStats{Season: "2025-26", Goals: 1}},
		{ID: "ito", SeasonStats: store.SeasonStats{Season: "2025-26", Appearances: 9}},
	}
	matches := []store.Match{
		{MatchID: "mitoma-20260217", PlayerID: "mitoma", PlayerStats: store.PlayerStats{Goals: 2, Assists: 1, MinutesPlayed: 90}},
		{MatchID: "mitoma-20260210", PlayerID: "mitoma", PlayerStats: store.PlayerStats{Assists: 1, MinutesPlayed: 71}},
		{MatchID: "ito-20260214", PlayerID: "ito", PlayerStats: store.PlayerStats{MinutesPlayed: 64}},
	}
	media := []store.MatchMediaData{
		{MatchID: "mitoma-20260217", PlayerID: "mitoma", AverageRating: 8.0},
		{MatchID: "mitoma-20260210", PlayerID: "mitoma", AverageRating: 7.0},
		{MatchID: "ito-20260214", PlayerID: "ito", AverageRating: 0},
	}
	return players, matches, media
}

func TestRecomputeAll(t *testing.T) {
	players, matches, media := fixtures()

	changes, err := Recompute(players, matches, media, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}

	got := players[0].SeasonStats
	want := store.SeasonStats{Season: "2025-26", Goals: 2, Assists: 2, Appearances: 2, MinutesPlayed: 161, AverageRating: 7.5}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if changes[0].Before.Goals != 1 {
		t.Errorf("expected before snapshot, got %+v", changes[0].Before)
	}

	ito := players[1].SeasonStats
	if ito.Appearances != 1 || ito.AverageRating != 0 {
		t.Errorf("expected zero-rated media ignored, got %+v", ito)
	}
}

func TestRecomputeSinglePlayer(t *testing.T) {
	players, matches, media := fixtures()

	changes, err := Recompute(players, matches, media, "ito")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 1 || changes[0].PlayerID != "ito" {
		t.Errorf("expected only ito, got %+v", changes)
	}
	if players[0].SeasonStats.Goals != 1 {
		t.Error("expected mitoma untouched")
	}
}

func TestRecomputeUnknownPlayer(t *testing.T) {
	players, matches, media := fixtures()
	if _, err := Recompute(players, matches, media, "nobody"); err == nil {
		t.Error("expected error for unknown player")
	}
}
