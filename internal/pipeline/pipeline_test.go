package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/masatokato67/kaigaigumi/internal/config"
	"github.com/masatokato67/kaigaigumi/internal/database"
	"github.com/masatokato67/kaigaigumi/internal/provider"
	"github.com/masatokato67/kaigaigumi/internal/store"
	"github.com/masatokato67/kaigaigumi/internal/synthesize"
)

type fakeAdapter struct {
	name    string
	matches map[string][]store.Match
	err     error
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) FetchPlayerMatches(_ context.Context, p store.Player) ([]store.Match, error) {
	if p.ExternalID(f.name) == "" {
		return nil, provider.ErrNoExternalID
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.matches[p.ID], nil
}

func testPlayers() []store.Player {
	return []store.Player{
		{
			ID:     "mitoma",
			Name:   store.LocalizedName{JA: "三笘薫", EN: "Kaoru Mitoma"},
			Club:   store.Club{Name: "Brighton & Hove Albion", ShortName: "ブライトン"},
			League: store.League{Name: "Premier League", ShortName: "EPL", Country: "イングランド"},
			FotMob: &store.ProviderRef{PlayerID: "1071179"},
		},
		{
			ID:     "ito",
			Name:   store.LocalizedName{JA: "伊藤洋輝", EN: "Hiroki Ito"},
			Club:   store.Club{Name: "Bayern Munich", ShortName: "バイエルン"},
			League: store.League{Name: "Bundesliga", ShortName: "BL", Country: "ドイツ"},
		},
	}
}

func fotmobMatches() map[string][]store.Match {
	return map[string][]store.Match{
		"mitoma": {
			{
				PlayerID:    "mitoma",
				Date:        "2026-02-17",
				Competition: "プレミアリーグ",
				HomeTeam:    store.TeamScore{Name: "ブライトン", Score: 2},
				AwayTeam:    store.TeamScore{Name: "アーセナル", Score: 0},
				PlayerStats: store.PlayerStats{MinutesPlayed: 90, Goals: 2, Assists: 1, Starting: true, Rating: 8.3},
				Notable:     true,
			},
			{
				PlayerID:    "mitoma",
				Date:        "2026-02-10",
				Competition: "プレミアリーグ",
				HomeTeam:    store.TeamScore{Name: "チェルシー", Score: 1},
				AwayTeam:    store.TeamScore{Name: "ブライトン", Score: 1},
				PlayerStats: store.PlayerStats{MinutesPlayed: 64, Rating: 6.6},
			},
		},
	}
}

type fixture struct {
	store  *store.Store
	ledger *database.DB
}

func setup(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := st.SavePlayers(testPlayers()); err != nil {
		t.Fatalf("SavePlayers: %v", err)
	}
	db, err := database.Open(filepath.Join(dir, "ledger.db"))
	if err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &fixture{store: st, ledger: db}
}

func (f *fixture) pipeline(adapters ...provider.Adapter) *Pipeline {
	synth := synthesize.NewSynthesizer(synthesize.Options{
		Seed: 42,
		Now:  func() time.Time { return time.Date(2026, 2, 18, 9, 30, 0, 0, time.UTC) },
	})
	return New(&config.Config{}, f.store, f.ledger, adapters, synth)
}

func TestRunAddsMatchesAndMedia(t *testing.T) {
	f := setup(t)
	p := f.pipeline(&fakeAdapter{name: "fotmob", matches: fotmobMatches()})

	r := p.Run(context.Background())
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(r.Steps))
	}
	if len(r.Added) != 2 || r.Generated != 2 {
		t.Errorf("expected 2 added and 2 generated, got %d and %d", len(r.Added), r.Generated)
	}

	matches, _ := f.store.LoadMatches()
	if len(matches) != 2 {
		t.Fatalf("expected 2 stored matches, got %d", len(matches))
	}
	if matches[0].MatchID != "mitoma-20260217" {
		t.Errorf("expected newest first, got %s", matches[0].MatchID)
	}

	media, _ := f.store.LoadMediaRatings()
	if len(media) != 2 {
		t.Errorf("expected 2 media documents, got %d", len(media))
	}

	videos, _ := f.store.LoadHighlights()
	if v, ok := videos["mitoma-20260210"]; !ok || v.Enabled {
		t.Errorf("expected disabled placeholder, got %+v (present=%v)", v, ok)
	}
}

func TestSecondRunAddsNothing(t *testing.T) {
	f := setup(t)
	p := f.pipeline(&fakeAdapter{name: "fotmob", matches: fotmobMatches()})

	if r := p.Run(context.Background()); r.Err() != nil {
		t.Fatalf("first run: %v", r.Err())
	}
	before, _ := f.store.LoadMediaRatings()

	r := p.Run(context.Background())
	if err := r.Err(); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(r.Added) != 0 || r.Generated != 0 {
		t.Errorf("expected nothing added, got %d added and %d generated", len(r.Added), r.Generated)
	}

	after, _ := f.store.LoadMediaRatings()
	if len(after) != len(before) || after[0].LastUpdated != before[0].LastUpdated {
		t.Error("expected media untouched on second run")
	}

	runs, _ := f.ledger.GetRecentRuns(5)
	if len(runs) != 2 {
		t.Fatalf("expected 2 ledger runs, got %d", len(runs))
	}
	if runs[0].MatchesAdded != 0 || runs[1].MatchesAdded != 2 {
		t.Errorf("unexpected ledger counts: %+v", runs)
	}
}

func TestRunRecordsSkipsAndFailures(t *testing.T) {
	f := setup(t)
	players := testPlayers()
	players[0].SofaScore = &store.ProviderRef{PlayerID: "967654"}
	if err := f.store.SavePlayers(players); err != nil {
		t.Fatalf("SavePlayers: %v", err)
	}
	p := f.pipeline(
		&fakeAdapter{name: "fotmob", matches: fotmobMatches()},
		&fakeAdapter{name: "sofascore", err: errors.New("status 403")},
	)

	r := p.Run(context.Background())
	if err := r.Err(); err != nil {
		t.Fatalf("adapter failures should not fail the run: %v", err)
	}
	if len(r.Added) != 2 {
		t.Errorf("expected 2 added, got %d", len(r.Added))
	}

	runs, _ := f.ledger.GetRecentRuns(1)
	attempts, err := f.ledger.GetAttemptsForRun(runs[0].ID)
	if err != nil {
		t.Fatalf("GetAttemptsForRun: %v", err)
	}
	if len(attempts) != 4 {
		t.Fatalf("expected 4 attempts, got %d", len(attempts))
	}

	statuses := map[string]int{}
	for _, a := range attempts {
		statuses[a.Status]++
	}
	// ito has no ids at all.
	if statuses["ok"] != 1 || statuses["failed"] != 1 || statuses["skipped"] != 2 {
		t.Errorf("unexpected statuses: %v", statuses)
	}
}

func TestRunWithNoPlayerIDs(t *testing.T) {
	f := setup(t)
	p := f.pipeline(&fakeAdapter{name: "transfermarkt"})

	r := p.Run(context.Background())
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Found != 0 || len(r.Added) != 0 {
		t.Errorf("expected nothing found, got %d found", r.Found)
	}
	if !strings.Contains(r.Steps[1].Summary, "0 new") {
		t.Errorf("unexpected reconcile summary %q", r.Steps[1].Summary)
	}
}

func TestDryRunWritesNothing(t *testing.T) {
	f := setup(t)
	p := f.pipeline(&fakeAdapter{name: "fotmob", matches: fotmobMatches()})

	r := p.DryRun()
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range r.Steps {
		if !strings.Contains(s.Summary, "[dry-run]") {
			t.Errorf("expected dry-run summary, got %q", s.Summary)
		}
	}
	if !strings.Contains(r.Steps[0].Summary, "fotmob: 1") {
		t.Errorf("expected fotmob id count, got %q", r.Steps[0].Summary)
	}

	matches, _ := f.store.LoadMatches()
	if len(matches) != 0 {
		t.Errorf("expected no matches written, got %d", len(matches))
	}
	runs, _ := f.ledger.GetRecentRuns(5)
	if len(runs) != 0 {
		t.Errorf("expected no ledger runs, got %d", len(runs))
	}
}

func TestFetchScopesPlayersAndSkipsSynthesis(t *testing.T) {
	f := setup(t)
	p := f.pipeline(&fakeAdapter{name: "fotmob", matches: fotmobMatches()})

	r := p.Fetch(context.Background(), []string{"ito"})
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Added) != 0 {
		t.Errorf("expected nothing for ito, got %v", r.Added)
	}

	r = p.Fetch(context.Background(), []string{"mitoma"})
	if len(r.Added) != 2 {
		t.Fatalf("expected 2 added, got %v", r.Added)
	}
	media, _ := f.store.LoadMediaRatings()
	if len(media) != 0 {
		t.Errorf("expected no media generated by fetch, got %d", len(media))
	}
	runs, _ := f.ledger.GetRecentRuns(1)
	if runs[0].Command != "fetch" || runs[0].MatchesAdded != 2 {
		t.Errorf("unexpected ledger run %+v", runs[0])
	}
}
