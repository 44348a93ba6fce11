package database

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStartAndFinishRun(t *testing.T) {
	db := openTestDB(t)
	id, err := db.StartRun("run")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero run ID")
	}

	runs, _ := db.GetRecentRuns(5)
	if len(runs) != 1 || runs[0].Status != RunRunning || runs[0].FinishedAt != nil {
		t.Fatalf("expected one running run, got %+v", runs)
	}

	counts := RunCounts{Players: 8, MatchesFound: 40, MatchesAdded: 3, MediaGenerated: 3}
	if err := db.FinishRun(id, counts, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	runs, _ = db.GetRecentRuns(5)
	r := runs[0]
	if r.Status != RunOK {
		t.Errorf("expected ok, got %s", r.Status)
	}
	if r.FinishedAt == nil {
		t.Error("expected finished_at set")
	}
	if r.Players != 8 || r.MatchesFound != 40 || r.MatchesAdded != 3 || r.MediaGenerated != 3 {
		t.Errorf("unexpected counts %+v", r)
	}
	if r.Error != nil {
		t.Errorf("expected no error, got %q", *r.Error)
	}
}

func TestFinishRunWithError(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.StartRun("fetch")
	db.FinishRun(id, RunCounts{}, errors.New("saving matches: disk full"))

	runs, _ := db.GetRecentRuns(1)
	if runs[0].Status != RunFailed {
		t.Errorf("expected failed, got %s", runs[0].Status)
	}
	if runs[0].Error == nil || *runs[0].Error != "saving matches: disk full" {
		t.Errorf("expected error message, got %v", runs[0].Error)
	}
}

func TestGetRecentRunsOrderAndLimit(t *testing.T) {
	db := openTestDB(t)
	for _, cmd := range []string{"fetch", "generate", "run"} {
		db.StartRun(cmd)
	}

	runs, err := db.GetRecentRuns(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Command != "run" || runs[1].Command != "generate" {
		t.Errorf("expected newest first, got %s, %s", runs[0].Command, runs[1].Command)
	}
}

func TestRecordFetchAttempts(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.StartRun("fetch")

	db.RecordFetchAttempt(id, "fotmob", "mitoma", "ok", 5, "")
	db.RecordFetchAttempt(id, "sofascore", "mitoma", "failed", 0, "status 403")
	db.RecordFetchAttempt(id, "transfermarkt", "mitoma", "skipped", 0, "")
	db.RecordFetchAttempt(id, "fotmob", "ito", "ok", 2, "")

	attempts, err := db.GetAttemptsForRun(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attempts) != 4 {
		t.Fatalf("expected 4 attempts, got %d", len(attempts))
	}
	if attempts[1].Error == nil || *attempts[1].Error != "status 403" {
		t.Errorf("expected error recorded, got %v", attempts[1].Error)
	}
	if attempts[0].Error != nil {
		t.Error("expected nil error for ok attempt")
	}

	stats, err := db.GetProviderStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 providers, got %d", len(stats))
	}
	if stats[0].Provider != "fotmob" || stats[0].Attempts != 2 || stats[0].Found != 7 {
		t.Errorf("unexpected fotmob stats %+v", stats[0])
	}
	if stats[1].Provider != "sofascore" || stats[1].Failed != 1 {
		t.Errorf("unexpected sofascore stats %+v", stats[1])
	}
	if stats[2].Skipped != 1 {
		t.Errorf("unexpected transfermarkt stats %+v", stats[2])
	}
}

func TestRecordFetchAttemptRejectsUnknownStatus(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.StartRun("fetch")
	if err := db.RecordFetchAttempt(id, "fotmob", "mitoma", "maybe", 0, ""); err == nil {
		t.Error("expected check constraint error")
	}
}

func TestGetLastRunDate(t *testing.T) {
	db := openTestDB(t)

	date, err := db.GetLastRunDate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date != "" {
		t.Errorf("expected empty date, got %q", date)
	}

	id, _ := db.StartRun("run")
	db.FinishRun(id, RunCounts{}, nil)
	failed, _ := db.StartRun("run")
	db.FinishRun(failed, RunCounts{}, errors.New("boom"))

	date, _ = db.GetLastRunDate()
	if len(date) != len("2006-01-02") {
		t.Errorf("expected YYYY-MM-DD, got %q", date)
	}
}

func TestGetStats(t *testing.T) {
	db := openTestDB(t)
	ok, _ := db.StartRun("run")
	db.RecordFetchAttempt(ok, "fotmob", "mitoma", "ok", 4, "")
	db.RecordFetchAttempt(ok, "sofascore", "mitoma", "failed", 0, "timeout")
	db.FinishRun(ok, RunCounts{MatchesAdded: 2, MediaGenerated: 2}, nil)
	bad, _ := db.StartRun("run")
	db.FinishRun(bad, RunCounts{MatchesAdded: 1}, errors.New("boom"))
	db.StartRun("generate")

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Stats{TotalRuns: 3, SuccessfulRuns: 1, FailedRuns: 1, FetchAttempts: 2, FailedAttempts: 1, MatchesAdded: 3, MediaGenerated: 2}
	if *stats != want {
		t.Errorf("expected %+v, got %+v", want, *stats)
	}
}
