package synthesize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/masatokato67/kaigaigumi/internal/classify"
	"github.com/masatokato67/kaigaigumi/internal/store"
)

// PanelThreads generates one thread per archetype account in random order.
func (s *Synthesizer) PanelThreads(m store.Match, p store.Player, tier classify.Tier) []store.XThread {
	lang, ok := CountryLanguage[leagueCountry(p)]
	if !ok {
		lang = "EN"
	}
	stat := StatString(m.PlayerStats)
	if stat == "" {
		stat = "a strong showing"
	}
	r := strings.NewReplacer(
		"{playerEn}", p.Name.EN,
		"{playerJa}", p.Name.JA,
		"{opponent}", opponent(m, p),
		"{stat}", stat,
		"{minutes}", strconv.Itoa(m.PlayerStats.MinutesPlayed),
		"{clubName}", p.Club.Name,
		"{clubShort}", p.Club.ShortName,
		"{league}", p.League.ShortName,
	)

	threads := make([]store.XThread, 0, len(panelArchetypes))
	for _, i := range s.rng.Perm(len(panelArchetypes)) {
		a := panelArchetypes[i]
		t := s.pick(a.Templates[tier])
		threadLang := lang
		if a.Kind == "japanese" {
			threadLang = "JA"
		}
		threads = append(threads, store.XThread{
			ID:             s.newID("t"),
			Username:       handle(r.Replace(a.Username)),
			Verified:       a.Verified,
			LanguageCode:   threadLang,
			OriginalText:   r.Replace(t.Original),
			TranslatedText: r.Replace(t.Translated),
			Likes:          s.between(1000, 26000),
			Retweets:       s.between(200, 5200),
			Replies:        s.panelReplies(tier, r),
		})
	}
	return threads
}

// handle turns a rendered archetype name into an @handle. Handles carry no
// whitespace.
func handle(name string) string {
	return "@" + strings.Join(strings.Fields(name), "")
}

// panelReplies draws 2-4 distinct replies from the tier pool.
func (s *Synthesizer) panelReplies(tier classify.Tier, r *strings.Replacer) []store.ThreadReply {
	pool := panelReplies[tier]
	n := s.between(2, 5)
	if n > len(pool) {
		n = len(pool)
	}
	replies := make([]store.ThreadReply, 0, n)
	for _, i := range s.rng.Perm(len(pool))[:n] {
		lang := "EN"
		if s.rng.Float64() < 0.5 {
			lang = "JA"
		}
		replies = append(replies, store.ThreadReply{
			ID:             s.newID("r"),
			Username:       fmt.Sprintf("@Fan_%d", s.rng.Intn(10000)),
			LanguageCode:   lang,
			OriginalText:   r.Replace(pool[i].Original),
			TranslatedText: r.Replace(pool[i].Translated),
			Likes:          s.between(50, 550),
		})
	}
	return replies
}
