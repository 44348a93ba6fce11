package prompt

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/masatokato67/kaigaigumi/internal/store"
)

func newPrompter(lines ...string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(strings.Join(lines, "\n")+"\n"), &out), &out
}

func players() []store.Player {
	return []store.Player{
		{ID: "mitoma", Name: store.LocalizedName{JA: "三笘薫"}, Position: "LW", Club: store.Club{ShortName: "ブライトン"}},
		{ID: "ito", Name: store.LocalizedName{JA: "伊藤洋輝"}, Position: "CB", Club: store.Club{ShortName: "バイエルン"}},
	}
}

var today = time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)

func TestAskRepromptsUntilValid(t *testing.T) {
	p, out := newPrompter("abc", "25", "7")
	n, err := p.AskInt("Score", "", 0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Errorf("expected 7, got %d", n)
	}
	if strings.Count(out.String(), "❌") != 2 {
		t.Errorf("expected two rejections, got output:\n%s", out.String())
	}
}

func TestAskUsesDefaultAndAborts(t *testing.T) {
	p, _ := newPrompter("")
	got, err := p.Ask("Minutes", "90", nil)
	if err != nil || got != "90" {
		t.Errorf("expected default 90, got %q (%v)", got, err)
	}
	if _, err := p.Ask("Minutes", "90", nil); !errors.Is(err, ErrAborted) {
		t.Errorf("expected ErrAborted at end of input, got %v", err)
	}
}

func TestConfirm(t *testing.T) {
	p, _ := newPrompter("", "n", "maybe", "Y")
	if ok, _ := p.Confirm("Q", true); !ok {
		t.Error("expected default true")
	}
	if ok, _ := p.Confirm("Q", true); ok {
		t.Error("expected no")
	}
	if ok, _ := p.Confirm("Q", false); !ok {
		t.Error("expected yes after re-prompt")
	}
}

func TestAddMatch(t *testing.T) {
	p, _ := newPrompter(
		"1",          // player
		"2026-02-31", // invalid date
		"2026-02-17",
		"1",   // competition
		"",    // home team default
		"3",   // home score
		"NEC", // away team
		"21",  // out of range
		"1",
		"90", // minutes
		"2",  // goals
		"1",  // assists
		"",   // starting default yes
		"xx", // bad position
		"lw",
		"8.34",
		"", // notable default
	)

	m, err := AddMatch(p, players(), nil, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.MatchID != "mitoma-20260217" {
		t.Errorf("expected mitoma-20260217, got %s", m.MatchID)
	}
	if m.HomeTeam.Name != "ブライトン" || m.HomeTeam.Score != 3 || m.AwayTeam.Name != "NEC" || m.AwayTeam.Score != 1 {
		t.Errorf("unexpected teams %+v / %+v", m.HomeTeam, m.AwayTeam)
	}
	if m.Competition != "プレミアリーグ" {
		t.Errorf("expected プレミアリーグ, got %s", m.Competition)
	}
	ps := m.PlayerStats
	if ps.Goals != 2 || ps.Assists != 1 || ps.MinutesPlayed != 90 || !ps.Starting || ps.Position != "LW" {
		t.Errorf("unexpected stats %+v", ps)
	}
	if ps.Rating != 8.3 {
		t.Errorf("expected rating rounded to 8.3, got %v", ps.Rating)
	}
	if !m.Notable {
		t.Error("expected notable default from goals")
	}
}

func TestAddMatchRejectsNaNRating(t *testing.T) {
	p, out := newPrompter(
		"1", "2026-02-17", "1", "", "3", "NEC", "1",
		"90", "0", "0", "", "LW",
		"NaN",
		"nan",
		"6.8",
		"",
	)

	m, err := AddMatch(p, players(), nil, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.PlayerStats.Rating != 6.8 {
		t.Errorf("expected rating 6.8, got %v", m.PlayerStats.Rating)
	}
	if strings.Count(out.String(), "❌") != 2 {
		t.Errorf("expected two rejections, got output:\n%s", out.String())
	}
}

func TestAddMatchRejectsDuplicate(t *testing.T) {
	p, _ := newPrompter("2", "2026-02-14")
	existing := []store.Match{{MatchID: "ito-20260214"}}
	if _, err := AddMatch(p, players(), existing, today); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestManualMatchValidation(t *testing.T) {
	mm := ManualMatch{PlayerID: "mitoma", Date: "2026-02-17", Competition: "FAカップ", HomeTeam: "a", AwayTeam: "b", Position: "ST", Rating: 11}
	if _, err := mm.Match(); err == nil {
		t.Error("expected rating out of range to fail")
	}
	mm.Rating = math.NaN()
	if _, err := mm.Match(); err == nil {
		t.Error("expected NaN rating to fail")
	}
	mm.Rating = 6.5
	mm.Position = "SW"
	if _, err := mm.Match(); err == nil {
		t.Error("expected unknown position to fail")
	}
}

func TestDefaultNotable(t *testing.T) {
	if DefaultNotable(0, 0, 7.4) {
		t.Error("expected 7.4 without contributions not notable")
	}
	if !DefaultNotable(0, 0, 7.5) || !DefaultNotable(0, 1, 6.0) {
		t.Error("expected notable")
	}
}

func TestValidLanguage(t *testing.T) {
	for _, code := range LanguageCodes {
		if !ValidLanguage(code) {
			t.Errorf("expected %s valid", code)
		}
	}
	for _, code := range []string{"en", "XX", "", "CA"} {
		if ValidLanguage(code) {
			t.Errorf("expected %q invalid", code)
		}
	}
}

func TestAddVoices(t *testing.T) {
	p, _ := newPrompter(
		"@BrightonFan123",
		"2", // journalist
		"xx",
		"de",
		"Stark!",
		"強い！",
		"", // confirm add
		"y",
		"@Second",
		"1",
		"EN",
		"Nice",
		"いいね",
		"n", // do not add
		"",  // stop
	)
	md := &store.MatchMediaData{MatchID: "mitoma-20260217"}

	added, err := AddVoices(p, md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 1 || len(md.LocalVoices) != 1 {
		t.Fatalf("expected 1 voice, got %d", len(md.LocalVoices))
	}
	v := md.LocalVoices[0]
	if v.RoleKey != store.RoleJournalist || v.Role != "ジャーナリスト" || v.LanguageCode != "DE" {
		t.Errorf("unexpected voice %+v", v)
	}
	if !strings.HasPrefix(v.ID, "v_") {
		t.Errorf("expected v_ id, got %s", v.ID)
	}
}

func TestAddThread(t *testing.T) {
	p, out := newPrompter(
		"@SkySports",
		"y", // verified
		"en",
		"Mitoma was electric",
		"三笘は圧巻だった",
		"-3", // negative likes
		"1520",
		"", // retweets default 0
		"y",
		"@SeagullsTalk",
		"XX",
		"EN",
		"Best in the league",
		"リーグ最高",
		"", // reply likes
		"y",
		"@Amex",
		"NL",
		"Wat een speler",
		"なんて選手だ",
		"12",
		"",  // no more replies
		"",  // confirm add
		"n", // stop
	)
	md := &store.MatchMediaData{MatchID: "mitoma-20260217"}

	added, err := AddThread(p, md)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 1 || len(md.XThreads) != 1 {
		t.Fatalf("expected 1 thread, got %d", len(md.XThreads))
	}
	th := md.XThreads[0]
	if !th.Verified || th.LanguageCode != "EN" || th.Likes != 1520 || th.Retweets != 0 {
		t.Errorf("unexpected thread %+v", th)
	}
	if !strings.HasPrefix(th.ID, "t_") {
		t.Errorf("expected t_ id, got %s", th.ID)
	}
	if len(th.Replies) != 2 {
		t.Fatalf("expected 2 replies, got %d", len(th.Replies))
	}
	if th.Replies[1].LanguageCode != "NL" || th.Replies[1].Likes != 12 || !strings.HasPrefix(th.Replies[1].ID, "r_") {
		t.Errorf("unexpected reply %+v", th.Replies[1])
	}
	if strings.Count(out.String(), "❌") != 2 {
		t.Errorf("expected two rejections, got output:\n%s", out.String())
	}
}

func TestAddThreadDeclined(t *testing.T) {
	p, _ := newPrompter("@a", "", "", "x", "y", "", "", "", "n")
	md := &store.MatchMediaData{}

	added, err := AddThread(p, md)
	if !errors.Is(err, ErrAborted) {
		t.Errorf("expected ErrAborted at end of input, got %v", err)
	}
	if added != 0 || len(md.XThreads) != 0 {
		t.Errorf("expected nothing added, got %d", len(md.XThreads))
	}
}
