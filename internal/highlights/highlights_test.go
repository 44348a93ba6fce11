package highlights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/masatokato67/kaigaigumi/internal/store"
)

const channelFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns="http://www.w3.org/2005/Atom">
 <title>Premier League</title>
 <entry>
  <yt:videoId>old111</yt:videoId>
  <title>Mitoma scores v Arsenal | HIGHLIGHTS</title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=old111"/>
  <published>2026-01-02T10:00:00+00:00</published>
 </entry>
 <entry>
  <yt:videoId>abc123</yt:videoId>
  <title>Brighton 2-0 Arsenal | Mitoma double! | Premier League Highlights</title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=abc123"/>
  <published>2026-02-18T08:00:00+00:00</published>
 </entry>
 <entry>
  <title>Wolves 1-1 Fulham</title>
  <link rel="alternate" href="https://youtu.be/xyz789"/>
  <published>2026-02-18T09:00:00+00:00</published>
 </entry>
</feed>`

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func mitoma() store.Player {
	return store.Player{
		ID:   "mitoma",
		Name: store.LocalizedName{JA: "三笘薫", EN: "Kaoru Mitoma"},
		Club: store.Club{Name: "Brighton & Hove Albion", ShortName: "ブライトン"},
	}
}

func match(id, date, home, away string) store.Match {
	return store.Match{
		MatchID:  id,
		PlayerID: "mitoma",
		Date:     date,
		HomeTeam: store.TeamScore{Name: home},
		AwayTeam: store.TeamScore{Name: away},
	}
}

func TestSyncLinksVideo(t *testing.T) {
	srv := feedServer(t, channelFeed)
	s := NewSyncer([]Channel{{URL: srv.URL, Name: "Premier League"}}, 3, srv.Client(), "test-agent")

	videos := map[string]store.HighlightVideo{}
	matches := []store.Match{
		match("mitoma-20260217", "2026-02-17", "ブライトン", "アーセナル"),
		match("mitoma-20260210", "2026-02-10", "チェルシー", "ブライトン"),
	}

	r := s.Sync(context.Background(), videos, matches, []store.Player{mitoma()})
	if r.Placeholders != 2 {
		t.Errorf("expected 2 placeholders, got %d", r.Placeholders)
	}
	if r.Videos != 3 {
		t.Errorf("expected 3 videos, got %d", r.Videos)
	}
	if r.Linked != 1 {
		t.Fatalf("expected 1 linked, got %d", r.Linked)
	}

	got := videos["mitoma-20260217"]
	if !got.Enabled || got.YoutubeID != "abc123" {
		t.Errorf("expected abc123 linked, got %+v", got)
	}
	if v := videos["mitoma-20260210"]; v.Enabled || v.YoutubeID != "" {
		t.Errorf("expected untouched placeholder, got %+v", v)
	}
}

func TestSyncKeepsFilledEntries(t *testing.T) {
	srv := feedServer(t, channelFeed)
	s := NewSyncer([]Channel{{URL: srv.URL}}, 3, srv.Client(), "")

	videos := map[string]store.HighlightVideo{
		"mitoma-20260217": {Enabled: true, YoutubeID: "manual1", Title: "manual"},
	}
	r := s.Sync(context.Background(), videos, []store.Match{match("mitoma-20260217", "2026-02-17", "ブライトン", "アーセナル")}, []store.Player{mitoma()})
	if r.Linked != 0 || videos["mitoma-20260217"].YoutubeID != "manual1" {
		t.Errorf("expected manual entry kept, got %+v", videos["mitoma-20260217"])
	}
}

func TestSyncSurvivesBrokenFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewSyncer([]Channel{{URL: srv.URL}}, 3, srv.Client(), "")
	videos := map[string]store.HighlightVideo{}
	r := s.Sync(context.Background(), videos, []store.Match{match("mitoma-20260217", "2026-02-17", "ブライトン", "アーセナル")}, nil)
	if r.Placeholders != 1 || r.Linked != 0 {
		t.Errorf("expected placeholder only, got %+v", r)
	}
	if _, ok := videos["mitoma-20260217"]; !ok {
		t.Error("expected placeholder entry")
	}
}

func TestMatches(t *testing.T) {
	p := mitoma()
	tests := []struct {
		title    string
		opponent string
		want     bool
	}{
		{"Brighton 2-0 Arsenal | MITOMA double", "アーセナル", true},
		{"【ハイライト】三笘薫がゴール！ブライトン vs アーセナル", "アーセナル", true},
		{"Mitoma scores again", "アーセナル", false},
		{"Brighton 2-0 Arsenal", "アーセナル", false},
		{"Mitoma v NEC Nijmegen", "NEC", true},
	}
	for _, tt := range tests {
		if got := Matches(tt.title, p, tt.opponent); got != tt.want {
			t.Errorf("Matches(%q, %q): expected %v, got %v", tt.title, tt.opponent, tt.want, got)
		}
	}
}

func TestChannelName(t *testing.T) {
	if got := channelName(Channel{URL: "https://feeds.example.com/rss", Name: "DAZN"}); got != "DAZN" {
		t.Errorf("expected configured name, got %q", got)
	}
	if got := channelName(Channel{URL: "https://www.youtube.com/feeds/videos.xml?channel_id=UCabc"}); got != "UCabc" {
		t.Errorf("expected channel id, got %q", got)
	}
}
