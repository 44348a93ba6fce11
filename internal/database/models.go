package database

// Run statuses.
const (
	RunRunning = "running"
	RunOK      = "ok"
	RunFailed  = "failed"
)

// Run is one invocation of a pipeline command.
type Run struct {
	ID             int64
	Command        string
	Status         string
	StartedAt      string
	FinishedAt     *string
	Players        int
	MatchesFound   int
	MatchesAdded   int
	MediaGenerated int
	Error          *string
}

// RunCounts are the totals recorded when a run finishes.
type RunCounts struct {
	Players        int
	MatchesFound   int
	MatchesAdded   int
	MediaGenerated int
}

// FetchAttempt is one adapter call for one player within a run.
type FetchAttempt struct {
	ID          int64
	RunID       int64
	Provider    string
	PlayerID    string
	Status      string
	Found       int
	Error       *string
	AttemptedAt string
}

// ProviderStats aggregates fetch attempts for one provider.
type ProviderStats struct {
	Provider string
	Attempts int
	Failed   int
	Skipped  int
	Found    int
}

// Stats contains aggregate ledger statistics.
type Stats struct {
	TotalRuns      int
	SuccessfulRuns int
	FailedRuns     int
	FetchAttempts  int
	FailedAttempts int
	MatchesAdded   int
	MediaGenerated int
}
