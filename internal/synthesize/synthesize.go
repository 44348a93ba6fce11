package synthesize

import (
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/masatokato67/kaigaigumi/internal/classify"
	"github.com/masatokato67/kaigaigumi/internal/store"
)

// Thread styles.
const (
	StyleScaled = "scaled"
	StylePanel  = "panel"
)

// Result holds the outcome of a synthesis pass.
type Result struct {
	Generated int
	Replaced  int
	Skipped   int
}

// Options configures a Synthesizer. A zero Seed seeds from the clock.
type Options struct {
	Seed        int64
	ThreadStyle string
	Now         func() time.Time
}

// Synthesizer turns matches into media ratings, local voices and threads.
// It is not safe for concurrent use.
type Synthesizer struct {
	rng   *rand.Rand
	style string
	now   func() time.Time
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(opts Options) *Synthesizer {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	style := opts.ThreadStyle
	if style == "" {
		style = StyleScaled
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Synthesizer{
		rng:   rand.New(rand.NewSource(seed)),
		style: style,
		now:   now,
	}
}

// GenerateMediaData builds the full companion document for a match.
func (s *Synthesizer) GenerateMediaData(m store.Match, p store.Player) store.MatchMediaData {
	tier := classify.Match(m)
	ratings, avg := s.Ratings(p, tier)
	return store.MatchMediaData{
		MatchID:       m.MatchID,
		PlayerID:      m.PlayerID,
		Ratings:       ratings,
		AverageRating: avg,
		LocalVoices:   s.Voices(m, p, tier),
		XThreads:      s.Threads(m, p, tier),
		LastUpdated:   s.stamp(),
	}
}

// Threads generates threads in the configured style.
func (s *Synthesizer) Threads(m store.Match, p store.Player, tier classify.Tier) []store.XThread {
	if s.style == StylePanel {
		return s.PanelThreads(m, p, tier)
	}
	return s.ScaledThreads(m, p, tier)
}

// GenerateMissing creates media documents for matches that lack one. When ids
// is non-empty only those matches are targeted, and existing documents are
// replaced only if force is set. The returned slice is a new collection.
func (s *Synthesizer) GenerateMissing(matches []store.Match, players []store.Player, media []store.MatchMediaData, ids []string, force bool) ([]store.MatchMediaData, *Result) {
	result := &Result{}
	byPlayer := store.PlayersByID(players)

	out := make([]store.MatchMediaData, len(media))
	copy(out, media)
	index := make(map[string]int, len(out))
	for i, md := range out {
		index[md.MatchID] = i
	}

	wanted := idSet(ids)
	seen := make(map[string]bool)
	for _, m := range matches {
		if wanted != nil && !wanted[m.MatchID] {
			continue
		}
		seen[m.MatchID] = true
		pos, exists := index[m.MatchID]
		if exists && (wanted == nil || !force) {
			if wanted != nil {
				log.Printf("[SKIP] %s: media data exists (use --force to replace)", m.MatchID)
				result.Skipped++
			}
			continue
		}

		p, ok := byPlayer[m.PlayerID]
		if !ok {
			log.Printf("[SKIP] %s: player %s not found", m.MatchID, m.PlayerID)
			result.Skipped++
			continue
		}

		md := s.GenerateMediaData(m, p)
		if exists {
			out[pos] = md
			result.Replaced++
			log.Printf("Replaced media data for %s", m.MatchID)
			continue
		}
		index[m.MatchID] = len(out)
		out = append(out, md)
		result.Generated++
		log.Printf("Generated media data for %s (%s)", m.MatchID, classify.Match(m))
	}

	for _, id := range ids {
		if !seen[id] {
			log.Printf("[SKIP] %s: match not found", id)
			result.Skipped++
		}
	}

	log.Printf("Synthesis complete: %d generated, %d replaced, %d skipped",
		result.Generated, result.Replaced, result.Skipped)
	return out, result
}

// RegenerateThreads replaces the threads of existing media documents in
// place. Documents whose match or player is missing are skipped.
func (s *Synthesizer) RegenerateThreads(media []store.MatchMediaData, matches []store.Match, players []store.Player, ids []string) *Result {
	result := &Result{}
	byPlayer := store.PlayersByID(players)
	byMatch := make(map[string]store.Match, len(matches))
	for _, m := range matches {
		byMatch[m.MatchID] = m
	}

	wanted := idSet(ids)
	for i := range media {
		md := &media[i]
		if wanted != nil && !wanted[md.MatchID] {
			continue
		}
		m, ok := byMatch[md.MatchID]
		if !ok {
			log.Printf("[SKIP] %s: match not found", md.MatchID)
			result.Skipped++
			continue
		}
		p, ok := byPlayer[m.PlayerID]
		if !ok {
			log.Printf("[SKIP] %s: player %s not found", md.MatchID, m.PlayerID)
			result.Skipped++
			continue
		}
		md.XThreads = s.Threads(m, p, classify.Match(m))
		md.LastUpdated = s.stamp()
		result.Replaced++
	}

	log.Printf("Thread regeneration complete: %d replaced, %d skipped", result.Replaced, result.Skipped)
	return result
}

func idSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (s *Synthesizer) stamp() string {
	return s.now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// newID returns a prefixed id drawn from the seeded source.
func (s *Synthesizer) newID(prefix string) string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return prefix + "_" + uuid.NewString()
	}
	return prefix + "_" + id.String()
}

func (s *Synthesizer) pick(pool []Text) Text {
	if len(pool) == 0 {
		return Text{}
	}
	return pool[s.rng.Intn(len(pool))]
}

// between returns an int in [lo, hi).
func (s *Synthesizer) between(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func leagueCountry(p store.Player) string {
	if _, ok := Outlets[p.League.Country]; ok {
		return p.League.Country
	}
	return defaultCountry
}

// opponent is whichever side is not the player's club.
func opponent(m store.Match, p store.Player) string {
	if p.Club.ShortName != "" && strings.Contains(m.HomeTeam.Name, p.Club.ShortName) {
		return m.AwayTeam.Name
	}
	return m.HomeTeam.Name
}
