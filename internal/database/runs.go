package database

import (
	"database/sql"
	"fmt"
)

// StartRun records the start of a command and returns the run id.
func (db *DB) StartRun(command string) (int64, error) {
	result, err := db.conn.Exec("INSERT INTO runs (command) VALUES (?)", command)
	if err != nil {
		return 0, fmt.Errorf("starting run: %w", err)
	}
	return result.LastInsertId()
}

// FinishRun closes a run with its totals. A non-nil runErr marks it failed.
func (db *DB) FinishRun(id int64, counts RunCounts, runErr error) error {
	status := RunOK
	var msg *string
	if runErr != nil {
		status = RunFailed
		s := runErr.Error()
		msg = &s
	}
	_, err := db.conn.Exec(
		`UPDATE runs SET status = ?, finished_at = datetime('now'), players = ?,
		matches_found = ?, matches_added = ?, media_generated = ?, error = ?
		WHERE id = ?`,
		status, counts.Players, counts.MatchesFound, counts.MatchesAdded, counts.MediaGenerated, msg, id,
	)
	if err != nil {
		return fmt.Errorf("finishing run %d: %w", id, err)
	}
	return nil
}

// RecordFetchAttempt stores one adapter call. errMsg may be empty.
func (db *DB) RecordFetchAttempt(runID int64, provider, playerID, status string, found int, errMsg string) error {
	var msg *string
	if errMsg != "" {
		msg = &errMsg
	}
	_, err := db.conn.Exec(
		`INSERT INTO fetch_attempts (run_id, provider, player_id, status, found, error)
		VALUES (?, ?, ?, ?, ?, ?)`,
		runID, provider, playerID, status, found, msg,
	)
	if err != nil {
		return fmt.Errorf("recording fetch attempt: %w", err)
	}
	return nil
}

// GetRecentRuns returns up to limit runs, newest first.
func (db *DB) GetRecentRuns(limit int) ([]Run, error) {
	rows, err := db.conn.Query(
		`SELECT id, command, status, started_at, finished_at, players,
		matches_found, matches_added, media_generated, error
		FROM runs ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Command, &r.Status, &r.StartedAt, &r.FinishedAt, &r.Players,
			&r.MatchesFound, &r.MatchesAdded, &r.MediaGenerated, &r.Error); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetAttemptsForRun returns a run's fetch attempts in insertion order.
func (db *DB) GetAttemptsForRun(runID int64) ([]FetchAttempt, error) {
	rows, err := db.conn.Query(
		`SELECT id, run_id, provider, player_id, status, found, error, attempted_at
		FROM fetch_attempts WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []FetchAttempt
	for rows.Next() {
		var a FetchAttempt
		if err := rows.Scan(&a.ID, &a.RunID, &a.Provider, &a.PlayerID, &a.Status, &a.Found, &a.Error, &a.AttemptedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// GetLastRunDate returns the date of the most recent successful run.
// Returns empty string if no runs exist.
func (db *DB) GetLastRunDate() (string, error) {
	row := db.conn.QueryRow(
		"SELECT date(finished_at) FROM runs WHERE status = 'ok' ORDER BY id DESC LIMIT 1",
	)

	var date sql.NullString
	if err := row.Scan(&date); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return date.String, nil
}

// GetProviderStats aggregates fetch attempts per provider.
func (db *DB) GetProviderStats() ([]ProviderStats, error) {
	rows, err := db.conn.Query(
		`SELECT provider, COUNT(*),
		SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END),
		SUM(CASE WHEN status = 'skipped' THEN 1 ELSE 0 END),
		COALESCE(SUM(found), 0)
		FROM fetch_attempts GROUP BY provider ORDER BY provider`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []ProviderStats
	for rows.Next() {
		var s ProviderStats
		if err := rows.Scan(&s.Provider, &s.Attempts, &s.Failed, &s.Skipped, &s.Found); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// GetStats returns aggregate ledger statistics.
func (db *DB) GetStats() (*Stats, error) {
	s := &Stats{}

	queries := []struct {
		sql  string
		dest *int
	}{
		{"SELECT COUNT(*) FROM runs", &s.TotalRuns},
		{"SELECT COUNT(*) FROM runs WHERE status = 'ok'", &s.SuccessfulRuns},
		{"SELECT COUNT(*) FROM runs WHERE status = 'failed'", &s.FailedRuns},
		{"SELECT COUNT(*) FROM fetch_attempts", &s.FetchAttempts},
		{"SELECT COUNT(*) FROM fetch_attempts WHERE status = 'failed'", &s.FailedAttempts},
		{"SELECT COALESCE(SUM(matches_added), 0) FROM runs", &s.MatchesAdded},
		{"SELECT COALESCE(SUM(media_generated), 0) FROM runs", &s.MediaGenerated},
	}

	for _, q := range queries {
		if err := db.conn.QueryRow(q.sql).Scan(q.dest); err != nil {
			return nil, err
		}
	}

	return s, nil
}
