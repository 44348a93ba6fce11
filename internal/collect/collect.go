package collect

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/masatokato67/kaigaigumi/internal/provider"
	"github.com/masatokato67/kaigaigumi/internal/reconcile"
	"github.com/masatokato67/kaigaigumi/internal/store"
)

// Attempt statuses.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Attempt describes one adapter call for one player.
type Attempt struct {
	Provider string
	PlayerID string
	Status   string
	Found    int
	Error    string
}

// Result holds the results of a collection run.
type Result struct {
	Matches    []store.Match
	TotalFound int
	Players    int
	Skipped    int
	Failed     int
	Dropped    int
	Sources    map[string]int
}

// Collector runs every adapter over every player, one request at a time.
type Collector struct {
	adapters    []provider.Adapter
	playerDelay time.Duration
	onAttempt   func(Attempt)
}

// NewCollector creates a collector. onAttempt may be nil.
func NewCollector(adapters []provider.Adapter, playerDelay time.Duration, onAttempt func(Attempt)) *Collector {
	return &Collector{
		adapters:    adapters,
		playerDelay: playerDelay,
		onAttempt:   onAttempt,
	}
}

// Collect fetches matches for players. Adapter failures are logged and
// counted; only context cancellation stops the run early.
func (c *Collector) Collect(ctx context.Context, players []store.Player) *Result {
	r := &Result{Sources: make(map[string]int)}

	for i, p := range players {
		if ctx.Err() != nil {
			log.Printf("Collection cancelled: %v", ctx.Err())
			break
		}
		r.Players++

		for _, a := range c.adapters {
			log.Printf("Fetching %s matches for %s", a.Name(), p.ID)
			matches, err := a.FetchPlayerMatches(ctx, p)
			attempt := Attempt{Provider: a.Name(), PlayerID: p.ID, Status: StatusOK}

			switch {
			case errors.Is(err, provider.ErrNoExternalID):
				attempt.Status = StatusSkipped
				r.Skipped++
			case err != nil:
				log.Printf("%s: %s failed: %v", a.Name(), p.ID, err)
				attempt.Status = StatusFailed
				attempt.Error = err.Error()
				r.Failed++
			}

			valid := c.validate(a.Name(), matches, r)
			attempt.Found = len(valid)
			r.TotalFound += len(valid)
			r.Sources[a.Name()] += len(valid)
			r.Matches = append(r.Matches, valid...)

			if c.onAttempt != nil {
				c.onAttempt(attempt)
			}
		}

		if i < len(players)-1 && c.playerDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(c.playerDelay):
			}
		}
	}

	log.Printf("Collection complete: %d found for %d players, %d skipped, %d failed, %d dropped",
		r.TotalFound, r.Players, r.Skipped, r.Failed, r.Dropped)
	return r
}

// validate drops matches whose date is not YYYY-MM-DD and recomputes ids.
func (c *Collector) validate(source string, matches []store.Match, r *Result) []store.Match {
	var out []store.Match
	for _, m := range matches {
		if _, err := time.Parse("2006-01-02", m.Date); err != nil {
			log.Printf("%s: dropping %s match with malformed date %q", source, m.PlayerID, m.Date)
			r.Dropped++
			continue
		}
		m.MatchID = reconcile.MatchID(m.PlayerID, m.Date)
		out = append(out, m)
	}
	return out
}
