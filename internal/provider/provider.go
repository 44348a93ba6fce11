// Package provider adapts upstream statistics providers to the canonical
// store.Match shape.
package provider

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/masatokato67/kaigaigumi/internal/config"
	"github.com/masatokato67/kaigaigumi/internal/fetch"
	"github.com/masatokato67/kaigaigumi/internal/store"
)

// DefaultRating is used when a provider has no usable rating.
const DefaultRating = 6.5

// ErrNoExternalID means the player is not registered with the provider.
var ErrNoExternalID = errors.New("player has no id for this provider")

// Adapter fetches a player's recent appearances from one provider.
// Upstream failures for individual fixtures are logged and skipped; an error
// is returned only when nothing could be fetched for the player.
type Adapter interface {
	Name() string
	FetchPlayerMatches(ctx context.Context, player store.Player) ([]store.Match, error)
}

// Fetcher is the HTTP surface adapters need.
type Fetcher interface {
	GetJSON(ctx context.Context, rawURL string, v any) error
	GetHTML(ctx context.Context, rawURL string) ([]byte, error)
}

// New returns the enabled adapters in fixed order: fotmob, sofascore,
// transfermarkt.
func New(cfg *config.Config, client *fetch.Client) []Adapter {
	var adapters []Adapter
	p := cfg.Providers
	if p.FotMob.Enabled {
		adapters = append(adapters, NewFotMob(client, p.FotMob.BaseURL))
	}
	if p.SofaScore.Enabled {
		start, err := time.Parse("2006-01-02", p.SofaScore.SeasonStart)
		if err != nil {
			start = time.Time{}
		}
		adapters = append(adapters, NewSofaScore(client, SofaScoreOptions{
			BaseURL:      p.SofaScore.BaseURL,
			SeasonStart:  start,
			MaxEvents:    p.SofaScore.MaxEvents,
			FixtureDelay: cfg.Fetch.FixtureDelay,
		}))
	}
	if p.Transfermarkt.Enabled {
		adapters = append(adapters, NewTransfermarkt(client, p.Transfermarkt.URLTemplate))
	}
	return adapters
}

// ResolveRating returns r, or DefaultRating when r is nil, NaN or infinite.
func ResolveRating(r *float64) float64 {
	if r == nil || math.IsNaN(*r) || math.IsInf(*r, 0) {
		return DefaultRating
	}
	return *r
}

// IsNotable reports the shared notability rule: a goal, two assists or a
// rating of 8.0 or more.
func IsNotable(goals, assists int, rating float64) bool {
	return goals > 0 || assists >= 2 || rating >= 8.0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
