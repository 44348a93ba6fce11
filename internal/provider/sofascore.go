package provider

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/masatokato67/kaigaigumi/internal/reconcile"
	"github.com/masatokato67/kaigaigumi/internal/store"
	"github.com/masatokato67/kaigaigumi/internal/translate"
)

// SofaScoreOptions configures the SofaScore adapter.
type SofaScoreOptions struct {
	BaseURL      string
	SeasonStart  time.Time
	MaxEvents    int
	FixtureDelay time.Duration
}

// SofaScore lists a player's last events and fetches per-event statistics.
type SofaScore struct {
	client Fetcher
	opts   SofaScoreOptions
}

// NewSofaScore creates the adapter. MaxEvents defaults to 30.
func NewSofaScore(client Fetcher, opts SofaScoreOptions) *SofaScore {
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.MaxEvents <= 0 {
		opts.MaxEvents = 30
	}
	return &SofaScore{client: client, opts: opts}
}

func (s *SofaScore) Name() string { return store.ProviderSofaScore }

type sofascoreEvents struct {
	Events []sofascoreEvent `json:"events"`
}

type sofascoreEvent struct {
	ID             int64 `json:"id"`
	StartTimestamp int64 `json:"startTimestamp"`
	Tournament     struct {
		Name             string `json:"name"`
		UniqueTournament *struct {
			Name string `json:"name"`
		} `json:"uniqueTournament"`
	} `json:"tournament"`
	HomeTeam  sofascoreTeam   `json:"homeTeam"`
	AwayTeam  sofascoreTeam   `json:"awayTeam"`
	HomeScore *sofascoreScore `json:"homeScore"`
	AwayScore *sofascoreScore `json:"awayScore"`
	Status    struct {
		Type string `json:"type"`
	} `json:"status"`
}

type sofascoreTeam struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type sofascoreScore struct {
	Current int `json:"current"`
}

func (sc *sofascoreScore) value() int {
	if sc == nil {
		return 0
	}
	return sc.Current
}

type sofascoreStatistics struct {
	Statistics *struct {
		MinutesPlayed int      `json:"minutesPlayed"`
		Goals         int      `json:"goals"`
		Assists       int      `json:"assists"`
		Rating        *float64 `json:"rating"`
	} `json:"statistics"`
}

func (s *SofaScore) FetchPlayerMatches(ctx context.Context, player store.Player) ([]store.Match, error) {
	id := player.ExternalID(store.ProviderSofaScore)
	if id == "" {
		return nil, ErrNoExternalID
	}

	var list sofascoreEvents
	u := fmt.Sprintf("%s/player/%s/events/last/0", s.opts.BaseURL, id)
	if err := s.client.GetJSON(ctx, u, &list); err != nil {
		return nil, fmt.Errorf("sofascore player %s: %w", id, err)
	}

	var matches []store.Match
	for _, ev := range s.finishedEvents(list.Events) {
		m, ok := s.fetchEvent(ctx, player, id, ev)
		if ok {
			matches = append(matches, m)
		}
		if err := sleep(ctx, s.opts.FixtureDelay); err != nil {
			return matches, err
		}
	}
	return matches, nil
}

// finishedEvents keeps finished events on or after the season start, capped
// at MaxEvents in upstream order.
func (s *SofaScore) finishedEvents(events []sofascoreEvent) []sofascoreEvent {
	var out []sofascoreEvent
	for _, ev := range events {
		if ev.Status.Type != "finished" {
			continue
		}
		if time.Unix(ev.StartTimestamp, 0).Before(s.opts.SeasonStart) {
			continue
		}
		out = append(out, ev)
		if len(out) == s.opts.MaxEvents {
			break
		}
	}
	return out
}

func (s *SofaScore) fetchEvent(ctx context.Context, player store.Player, id string, ev sofascoreEvent) (store.Match, bool) {
	var stats sofascoreStatistics
	u := fmt.Sprintf("%s/event/%d/player/%s/statistics", s.opts.BaseURL, ev.ID, id)
	if err := s.client.GetJSON(ctx, u, &stats); err != nil {
		log.Printf("sofascore: skipping event %d for %s: %v", ev.ID, player.ID, err)
		return store.Match{}, false
	}
	st := stats.Statistics
	if st == nil || st.MinutesPlayed == 0 {
		return store.Match{}, false
	}

	date := time.Unix(ev.StartTimestamp, 0).UTC().Format("2006-01-02")
	tournament := ev.Tournament.Name
	if ev.Tournament.UniqueTournament != nil && ev.Tournament.UniqueTournament.Name != "" {
		tournament = ev.Tournament.UniqueTournament.Name
	}

	rating := DefaultRating
	if st.Rating != nil && *st.Rating != 0 {
		rating = ResolveRating(st.Rating)
	}

	return store.Match{
		MatchID:     reconcile.MatchID(player.ID, date),
		PlayerID:    player.ID,
		Date:        date,
		Competition: translate.League(tournament),
		HomeTeam:    store.TeamScore{Name: translate.Team(ev.HomeTeam.Name), Score: ev.HomeScore.value()},
		AwayTeam:    store.TeamScore{Name: translate.Team(ev.AwayTeam.Name), Score: ev.AwayScore.value()},
		PlayerStats: store.PlayerStats{
			MinutesPlayed: st.MinutesPlayed,
			Goals:         st.Goals,
			Assists:       st.Assists,
			Starting:      st.MinutesPlayed >= 60,
			Position:      player.Position,
			Rating:        round1(rating),
		},
		Notable: IsNotable(st.Goals, st.Assists, rating),
	}, true
}
