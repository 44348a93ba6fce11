package provider

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/masatokato67/kaigaigumi/internal/fetch"
	"github.com/masatokato67/kaigaigumi/internal/reconcile"
	"github.com/masatokato67/kaigaigumi/internal/scrape"
	"github.com/masatokato67/kaigaigumi/internal/store"
	"github.com/masatokato67/kaigaigumi/internal/translate"
)

// Transfermarkt scrapes a player's performance page.
type Transfermarkt struct {
	client      Fetcher
	urlTemplate string
}

// NewTransfermarkt creates the adapter. urlTemplate must contain "{id}".
func NewTransfermarkt(client Fetcher, urlTemplate string) *Transfermarkt {
	return &Transfermarkt{client: client, urlTemplate: urlTemplate}
}

func (t *Transfermarkt) Name() string { return store.ProviderTransfermarkt }

func (t *Transfermarkt) FetchPlayerMatches(ctx context.Context, player store.Player) ([]store.Match, error) {
	id := player.ExternalID(store.ProviderTransfermarkt)
	if id == "" {
		return nil, ErrNoExternalID
	}

	pageURL := strings.ReplaceAll(t.urlTemplate, "{id}", url.PathEscape(id))
	html, err := t.client.GetHTML(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("transfermarkt player %s: %w", id, err)
	}

	records := scrape.Parse(html)
	if len(records) == 0 {
		records = scrape.ParseText(fetch.MainText(html, pageURL))
	}
	if len(records) == 0 {
		log.Printf("transfermarkt: no rows found for %s", player.ID)
		return nil, nil
	}

	var matches []store.Match
	for _, rec := range records {
		if m, ok := t.toMatch(player, rec); ok {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (t *Transfermarkt) toMatch(player store.Player, rec scrape.RawRecord) (store.Match, bool) {
	if rec.Minutes == 0 || rec.Date == "" {
		return store.Match{}, false
	}

	var home, away store.TeamScore
	var playerIsHome bool
	if rec.Opponent != "" {
		own := store.TeamScore{Name: player.Club.ShortName}
		opp := store.TeamScore{Name: translate.Team(rec.Opponent)}
		playerIsHome = rec.Venue != "A"
		if playerIsHome {
			home, away = own, opp
		} else {
			home, away = opp, own
		}
	} else {
		home = store.TeamScore{Name: translate.Team(rec.HomeTeam)}
		away = store.TeamScore{Name: translate.Team(rec.AwayTeam)}
		playerIsHome = isOwnClub(home.Name, player)
	}
	home.Score, away.Score = rec.HomeScore, rec.AwayScore

	rating := ResolveRating(rec.Rating)
	starting := rec.Minutes >= 60
	if rec.Started != nil {
		starting = *rec.Started
	}
	position := rec.Position
	if position == "" {
		position = player.Position
	}

	won := home.Score > away.Score
	if !playerIsHome {
		won = away.Score > home.Score
	}

	competition := rec.Competition
	if competition == "" {
		competition = player.League.Name
	}

	return store.Match{
		MatchID:     reconcile.MatchID(player.ID, rec.Date),
		PlayerID:    player.ID,
		Date:        rec.Date,
		Competition: translate.League(competition),
		HomeTeam:    home,
		AwayTeam:    away,
		PlayerStats: store.PlayerStats{
			MinutesPlayed: rec.Minutes,
			Goals:         rec.Goals,
			Assists:       rec.Assists,
			Starting:      starting,
			Position:      position,
			Rating:        round1(rating),
		},
		Notable: IsNotable(rec.Goals, rec.Assists, rating) || (won && rec.Minutes >= 80),
	}, true
}

func isOwnClub(name string, player store.Player) bool {
	short := player.Club.ShortName
	if short != "" && (name == short || strings.Contains(name, short)) {
		return true
	}
	return player.Club.Name != "" && strings.Contains(name, player.Club.Name)
}
