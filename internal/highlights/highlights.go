// Package highlights links matches to highlight videos published on channel feeds.
package highlights

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/masatokato67/kaigaigumi/internal/store"
	"github.com/masatokato67/kaigaigumi/internal/translate"
)

// Result holds the results of a sync.
type Result struct {
	Placeholders int
	Videos       int
	Linked       int
}

// Syncer fills highlight placeholders from channel feeds.
type Syncer struct {
	parser   *gofeed.Parser
	channels []Channel
	window   int
}

// NewSyncer creates a Syncer. windowDays is how long after kickoff a video
// may be published and still count. client may be nil.
func NewSyncer(channels []Channel, windowDays int, client *http.Client, userAgent string) *Syncer {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	if client != nil {
		parser.Client = client
	}
	if windowDays <= 0 {
		windowDays = 3
	}
	return &Syncer{parser: parser, channels: channels, window: windowDays}
}

// Sync adds placeholders for matches without an entry, then links unfilled
// placeholders to the first feed video naming both the player and the opponent.
func (s *Syncer) Sync(ctx context.Context, videos map[string]store.HighlightVideo, matches []store.Match, players []store.Player) *Result {
	r := &Result{Placeholders: store.EnsurePlaceholders(videos, matches)}

	var feed []Video
	for _, ch := range s.channels {
		vs, err := fetchVideos(ctx, s.parser, ch)
		if err != nil {
			log.Printf("Failed to parse feed %s: %v", ch.URL, err)
			continue
		}
		log.Printf("Parsed %d videos from %s", len(vs), channelName(ch))
		feed = append(feed, vs...)
	}
	r.Videos = len(feed)
	r.Linked = s.link(videos, matches, players, feed)

	log.Printf("Highlight sync complete: %d placeholders added, %d videos scanned, %d linked",
		r.Placeholders, r.Videos, r.Linked)
	return r
}

func (s *Syncer) link(videos map[string]store.HighlightVideo, matches []store.Match, players []store.Player, feed []Video) int {
	sort.SliceStable(feed, func(i, j int) bool { return feed[i].Published.Before(feed[j].Published) })

	used := make(map[string]bool)
	for _, v := range videos {
		if v.YoutubeID != "" {
			used[v.YoutubeID] = true
		}
	}

	byID := store.PlayersByID(players)
	linked := 0
	for _, m := range matches {
		entry, ok := videos[m.MatchID]
		if !ok || entry.Enabled || entry.YoutubeID != "" {
			continue
		}
		p, ok := byID[m.PlayerID]
		if !ok {
			continue
		}
		kickoff, err := time.Parse("2006-01-02", m.Date)
		if err != nil {
			continue
		}
		until := kickoff.AddDate(0, 0, s.window+1)

		for _, v := range feed {
			if used[v.ID] || v.Published.Before(kickoff) || !v.Published.Before(until) {
				continue
			}
			if !Matches(v.Title, p, opponentOf(m, p)) {
				continue
			}
			videos[m.MatchID] = store.HighlightVideo{Enabled: true, YoutubeID: v.ID, Title: v.Title}
			used[v.ID] = true
			linked++
			log.Printf("Linked %s to %s (%s)", m.MatchID, v.ID, v.Channel)
			break
		}
	}
	return linked
}

// Matches reports whether a video title names the player and the opponent,
// in English or Japanese.
func Matches(title string, p store.Player, opponent string) bool {
	lower := strings.ToLower(title)
	return containsAny(lower, playerNames(p)) && containsAny(lower, teamNames(opponent))
}

func playerNames(p store.Player) []string {
	names := []string{p.Name.JA, p.Name.EN}
	if fields := strings.Fields(p.Name.EN); len(fields) > 1 {
		names = append(names, fields[len(fields)-1])
	}
	return names
}

func teamNames(opponent string) []string {
	return append([]string{opponent}, translate.Teams.Sources(opponent)...)
}

func containsAny(lowerTitle string, names []string) bool {
	for _, n := range names {
		if n != "" && strings.Contains(lowerTitle, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func opponentOf(m store.Match, p store.Player) string {
	if p.Club.ShortName != "" && strings.Contains(m.HomeTeam.Name, p.Club.ShortName) {
		return m.AwayTeam.Name
	}
	return m.HomeTeam.Name
}
