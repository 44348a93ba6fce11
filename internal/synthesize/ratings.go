package synthesize

import (
	"github.com/masatokato67/kaigaigumi/internal/classify"
	"github.com/masatokato67/kaigaigumi/internal/store"
)

const jitter = 0.6

// Ratings grades the player once per outlet of his league country and
// returns the grades with the mean of the standard-scale ones.
func (s *Synthesizer) Ratings(p store.Player, tier classify.Tier) ([]store.MediaRating, float64) {
	base := baseRatings[tier]
	outlets := Outlets[leagueCountry(p)]

	ratings := make([]store.MediaRating, 0, len(outlets))
	for _, o := range outlets {
		rating := round1(base + (s.rng.Float64()-0.5)*jitter)
		comment := s.pick(commentPool(tier, o.Country))

		r := store.MediaRating{
			Source:            o.Source,
			Country:           o.Country,
			Comment:           comment.Original,
			CommentTranslated: comment.Translated,
		}
		if o.German {
			r.Rating = GermanGrade(rating)
			r.MaxRating = 6
			r.RatingSystem = store.RatingGerman
		} else {
			r.Rating = clamp(rating, 4, 10)
			r.MaxRating = 10
			r.RatingSystem = store.RatingStandard
		}
		ratings = append(ratings, r)
	}
	return ratings, AverageRating(ratings)
}

// GermanGrade maps a 10-point rating onto the inverted 1-6 scale.
func GermanGrade(rating float64) float64 {
	return clamp(round1(7-rating/1.5), 1, 6)
}

// AverageRating is the mean of the standard-scale ratings, or 0 if there are none.
func AverageRating(ratings []store.MediaRating) float64 {
	var sum float64
	var n int
	for _, r := range ratings {
		if r.RatingSystem != store.RatingStandard {
			continue
		}
		sum += r.Rating
		n++
	}
	if n == 0 {
		return 0
	}
	return round1(sum / float64(n))
}

func commentPool(tier classify.Tier, country string) []Text {
	lang, ok := commentLanguages[country]
	if !ok {
		lang = "EN"
	}
	byLang := mediaComments[tier]
	if pool := byLang[lang]; len(pool) > 0 {
		return pool
	}
	return byLang["EN"]
}
