package provider

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/masatokato67/kaigaigumi/internal/reconcile"
	"github.com/masatokato67/kaigaigumi/internal/scrape"
	"github.com/masatokato67/kaigaigumi/internal/store"
	"github.com/masatokato67/kaigaigumi/internal/translate"
)

// FotMob reads a player's recent matches from the playerData endpoint.
type FotMob struct {
	client  Fetcher
	baseURL string
}

// NewFotMob creates the adapter.
func NewFotMob(client Fetcher, baseURL string) *FotMob {
	return &FotMob{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (f *FotMob) Name() string { return store.ProviderFotMob }

type fotmobPlayerData struct {
	RecentMatches []fotmobMatch `json:"recentMatches"`
}

type fotmobMatch struct {
	MatchDate struct {
		UTCTime string `json:"utcTime"`
	} `json:"matchDate"`
	OpponentTeamName string `json:"opponentTeamName"`
	HomeScore        int    `json:"homeScore"`
	AwayScore        int    `json:"awayScore"`
	IsHomeTeam       bool   `json:"isHomeTeam"`
	MinutesPlayed    *int   `json:"minutesPlayed"`
	Goals            int    `json:"goals"`
	Assists          int    `json:"assists"`
	RatingProps      *struct {
		Rating flexFloat `json:"rating"`
	} `json:"ratingProps"`
	PlayerOfTheMatch bool   `json:"playerOfTheMatch"`
	OnBench          bool   `json:"onBench"`
	LeagueName       string `json:"leagueName"`
}

// flexFloat accepts a number or a numeric string. Anything else leaves it nil.
type flexFloat struct {
	Value *float64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if v, err := strconv.ParseFloat(string(data), 64); err == nil {
		f.Value = &v
	}
	return nil
}

func (f *FotMob) FetchPlayerMatches(ctx context.Context, player store.Player) ([]store.Match, error) {
	id := player.ExternalID(store.ProviderFotMob)
	if id == "" {
		return nil, ErrNoExternalID
	}

	u := f.baseURL + "/playerData?id=" + url.QueryEscape(id)
	var data fotmobPlayerData
	if err := f.client.GetJSON(ctx, u, &data); err != nil {
		return nil, fmt.Errorf("fotmob player %s: %w", id, err)
	}

	var matches []store.Match
	for _, fm := range data.RecentMatches {
		m, ok := f.toMatch(player, fm)
		if !ok {
			continue
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (f *FotMob) toMatch(player store.Player, fm fotmobMatch) (store.Match, bool) {
	if fm.MinutesPlayed == nil || *fm.MinutesPlayed == 0 {
		return store.Match{}, false
	}
	date, err := matchDate(fm.MatchDate.UTCTime)
	if err != nil {
		log.Printf("fotmob: skipping fixture with bad date %q", fm.MatchDate.UTCTime)
		return store.Match{}, false
	}

	opponentName := fm.OpponentTeamName
	if opponentName == "" {
		opponentName = "Unknown"
	}
	opponent := store.TeamScore{Name: translate.Team(opponentName)}
	own := store.TeamScore{Name: player.Club.ShortName}
	home, away := opponent, own
	if fm.IsHomeTeam {
		home, away = own, opponent
	}
	home.Score, away.Score = fm.HomeScore, fm.AwayScore

	var raw *float64
	if fm.RatingProps != nil {
		raw = fm.RatingProps.Rating.Value
	}
	rating := ResolveRating(raw)

	league := fm.LeagueName
	if league == "" {
		league = player.League.ShortName
	}

	return store.Match{
		MatchID:     reconcile.MatchID(player.ID, date),
		PlayerID:    player.ID,
		Date:        date,
		Competition: translate.League(league),
		HomeTeam:    home,
		AwayTeam:    away,
		PlayerStats: store.PlayerStats{
			MinutesPlayed: *fm.MinutesPlayed,
			Goals:         fm.Goals,
			Assists:       fm.Assists,
			Starting:      !fm.OnBench,
			Position:      player.Position,
			Rating:        rating,
		},
		Notable: IsNotable(fm.Goals, fm.Assists, rating) || fm.PlayerOfTheMatch,
	}, true
}

// matchDate returns the UTC calendar date of a kickoff timestamp.
func matchDate(utc string) (string, error) {
	if t, err := time.Parse(time.RFC3339, utc); err == nil {
		return t.UTC().Format("2006-01-02"), nil
	}
	return scrape.ParseDate(utc)
}
