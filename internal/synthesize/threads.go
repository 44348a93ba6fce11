package synthesize

import (
	"fmt"

	"github.com/masatokato67/kaigaigumi/internal/classify"
	"github.com/masatokato67/kaigaigumi/internal/store"
)

// MaxThreads caps the scaled thread count.
const MaxThreads = 10

type sentimentMix struct {
	positive, negative float64
}

var tierMix = map[classify.Tier]sentimentMix{
	classify.Excellent: {0.60, 0.15},
	classify.Good:      {0.60, 0.15},
	classify.Average:   {0.35, 0.25},
	classify.Poor:      {0.15, 0.55},
}

// ThreadCount grows from 3 with goals, assists and extreme ratings.
func ThreadCount(ps store.PlayerStats) int {
	n := 3
	switch {
	case ps.Goals >= 2:
		n += 4
	case ps.Goals >= 1:
		n += 2
	}
	switch {
	case ps.Assists >= 2:
		n += 3
	case ps.Assists >= 1:
		n++
	}
	switch {
	case ps.Rating >= 8:
		n += 3
	case ps.Rating >= 7.5:
		n += 2
	case ps.Rating >= 7:
		n++
	case ps.Rating < 6:
		n++
	}
	if n > MaxThreads {
		n = MaxThreads
	}
	return n
}

// Languages returns the thread languages of a translated competition name.
func Languages(competition string) []string {
	if langs, ok := competitionLanguages[competition]; ok {
		return langs
	}
	return []string{"EN"}
}

// ScaledThreads generates a thread count proportional to how exceptional the
// performance was. Languages rotate through the competition's languages and
// the first two threads come from verified accounts.
func (s *Synthesizer) ScaledThreads(m store.Match, p store.Player, tier classify.Tier) []store.XThread {
	langs := Languages(m.Competition)
	count := ThreadCount(m.PlayerStats)

	threads := make([]store.XThread, 0, count)
	for i := 0; i < count; i++ {
		lang := langs[i%len(langs)]
		verified := i < 2
		sent := s.drawSentiment(tier)
		t := s.pick(commentsFor(sent, lang))

		original, translated := t.Original, t.Translated
		if s.rng.Float64() < 0.5 {
			original = p.Name.EN + ": " + original
			translated = p.Name.JA + ": " + translated
		}

		likesHi := 21000
		if verified || m.Notable {
			likesHi = 26000
		}
		threads = append(threads, store.XThread{
			ID:             s.newID("t"),
			Username:       s.username(lang, verified),
			Verified:       verified,
			LanguageCode:   lang,
			OriginalText:   original,
			TranslatedText: translated,
			Likes:          s.between(1000, likesHi),
			Retweets:       s.between(100, 5100),
			Replies:        s.scaledReplies(langs, sent),
		})
	}
	return threads
}

func (s *Synthesizer) drawSentiment(tier classify.Tier) sentiment {
	mix := tierMix[tier]
	r := s.rng.Float64()
	switch {
	case r < mix.positive:
		return positive
	case r < mix.positive+mix.negative:
		return negative
	default:
		return neutral
	}
}

// scaledReplies attaches 1-4 replies that agree with the parent 70% of the time.
func (s *Synthesizer) scaledReplies(langs []string, parent sentiment) []store.ThreadReply {
	n := s.between(1, 5)
	replies := make([]store.ThreadReply, 0, n)
	for i := 0; i < n; i++ {
		lang := langs[s.rng.Intn(len(langs))]
		sent := parent
		if s.rng.Float64() <= 0.3 {
			sent = s.contrarian(parent)
		}
		t := s.pick(repliesFor(sent, lang))
		replies = append(replies, store.ThreadReply{
			ID:             s.newID("r"),
			Username:       s.username(lang, false),
			LanguageCode:   lang,
			OriginalText:   t.Original,
			TranslatedText: t.Translated,
			Likes:          s.between(50, 550),
		})
	}
	return replies
}

func (s *Synthesizer) contrarian(sent sentiment) sentiment {
	switch sent {
	case positive:
		return negative
	case negative:
		return positive
	}
	if s.rng.Float64() < 0.5 {
		return positive
	}
	return negative
}

func (s *Synthesizer) username(lang string, verified bool) string {
	if verified {
		roster, ok := verifiedAccounts[lang]
		if !ok {
			roster = verifiedAccounts["EN"]
		}
		return roster[s.rng.Intn(len(roster))]
	}
	prefixes, ok := anonymousPrefixes[lang]
	if !ok {
		prefixes = anonymousPrefixes["EN"]
	}
	return fmt.Sprintf("@%s%d", prefixes[s.rng.Intn(len(prefixes))], s.rng.Intn(9999))
}

func commentsFor(sent sentiment, lang string) []Text {
	if pool := threadComments[sent][lang]; len(pool) > 0 {
		return pool
	}
	return threadComments[sent]["EN"]
}

func repliesFor(sent sentiment, lang string) []Text {
	if pool := replyComments[lang][sent]; len(pool) > 0 {
		return pool
	}
	return replyComments["EN"][sent]
}
