package synthesize

import (
	"fmt"
	"strings"

	"github.com/masatokato67/kaigaigumi/internal/classify"
	"github.com/masatokato67/kaigaigumi/internal/store"
)

// Voices returns a supporter quote, plus a journalist quote for notable matches.
func (s *Synthesizer) Voices(m store.Match, p store.Player, tier classify.Tier) []store.LocalVoice {
	country := leagueCountry(p)
	lang, ok := CountryLanguage[country]
	if !ok {
		lang = "EN"
	}
	set := voicePool(lang, tier)
	opp := opponent(m, p)
	stat := StatString(m.PlayerStats)

	voices := []store.LocalVoice{
		s.voice(s.pick(set.Supporter), lang, store.RoleSupporter,
			"@"+strings.ReplaceAll(p.Club.ShortName, " ", "")+"Fan", p, opp, stat),
	}
	if m.Notable {
		voices = append(voices, s.voice(s.pick(set.Journalist), lang, store.RoleJournalist,
			"@"+country+"FootballAnalyst", p, opp, stat))
	}
	return voices
}

func (s *Synthesizer) voice(t Text, lang, role, username string, p store.Player, opp, stat string) store.LocalVoice {
	jaStat := ""
	if stat != "" {
		jaStat = "(" + stat + ")"
	}
	return store.LocalVoice{
		ID:             s.newID("v"),
		Username:       username,
		Role:           store.RoleLabels[role],
		RoleKey:        role,
		LanguageCode:   lang,
		OriginalText:   fill(t.Original, p.Name.EN, opp, stat),
		TranslatedText: fill(t.Translated, p.Name.JA, opp, jaStat),
	}
}

// voicePool falls back to English when a language lacks the tier.
func voicePool(lang string, tier classify.Tier) voiceSet {
	if set, ok := voiceTemplates[lang][tier]; ok {
		return set
	}
	return voiceTemplates["EN"][tier]
}

func fill(template, player, opp, stat string) string {
	return strings.NewReplacer("{player}", player, "{opponent}", opp, "{stat}", stat).Replace(template)
}

// StatString summarises goals and assists, or minutes when neither happened.
func StatString(ps store.PlayerStats) string {
	var parts []string
	if ps.Goals > 0 {
		parts = append(parts, plural(ps.Goals, "goal"))
	}
	if ps.Assists > 0 {
		parts = append(parts, plural(ps.Assists, "assist"))
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	if ps.MinutesPlayed > 0 {
		return fmt.Sprintf("%d minutes played", ps.MinutesPlayed)
	}
	return ""
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
