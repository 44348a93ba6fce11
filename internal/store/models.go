package store

// LocalizedName pairs the Japanese display name with the English one.
type LocalizedName struct {
	JA string `json:"ja"`
	EN string `json:"en"`
}

// Club is a player's current club.
type Club struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// League is a player's domestic league. Country is the Japanese country name
// ("イングランド", "ドイツ", ...) used to pick outlets and languages.
type League struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Country   string `json:"country"`
}

// SeasonStats aggregates a player's matches for the current season.
type SeasonStats struct {
	Season        string  `json:"season"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Appearances   int     `json:"appearances"`
	MinutesPlayed int     `json:"minutesPlayed"`
	AverageRating float64 `json:"averageRating"`
}

// ProviderRef holds a player's opaque identifier at one upstream provider.
type ProviderRef struct {
	PlayerID string `json:"playerId"`
}

// Player is a tracked footballer.
type Player struct {
	ID               string        `json:"id"`
	Name             LocalizedName `json:"name"`
	Position         string        `json:"position"`
	PositionCategory string        `json:"positionCategory"`
	Nationality      string        `json:"nationality"`
	Club             Club          `json:"club"`
	League           League        `json:"league"`
	Photo            string        `json:"photo"`
	MarketValue      string        `json:"marketValue"`
	Caps             int           `json:"caps"`
	SeasonStats      SeasonStats   `json:"seasonStats"`
	Featured         bool          `json:"featured"`
	FotMob           *ProviderRef  `json:"fotmob,omitempty"`
	SofaScore        *ProviderRef  `json:"sofascore,omitempty"`
	Transfermarkt    *ProviderRef  `json:"transfermarkt,omitempty"`
}

// Provider names accepted by ExternalID.
const (
	ProviderFotMob        = "fotmob"
	ProviderSofaScore     = "sofascore"
	ProviderTransfermarkt = "transfermarkt"
)

// ExternalID returns the player's identifier at the named provider, or "".
func (p Player) ExternalID(provider string) string {
	var ref *ProviderRef
	switch provider {
	case ProviderFotMob:
		ref = p.FotMob
	case ProviderSofaScore:
		ref = p.SofaScore
	case ProviderTransfermarkt:
		ref = p.Transfermarkt
	}
	if ref == nil {
		return ""
	}
	return ref.PlayerID
}

// TeamScore is one side of a fixture.
type TeamScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// PlayerStats is the tracked player's performance in one match.
type PlayerStats struct {
	MinutesPlayed int     `json:"minutesPlayed"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Starting      bool    `json:"starting"`
	Position      string  `json:"position"`
	Rating        float64 `json:"rating"`
}

// Match is one appearance of a tracked player. MatchID is {playerId}-{YYYYMMDD}.
type Match struct {
	MatchID     string      `json:"matchId"`
	PlayerID    string      `json:"playerId"`
	Date        string      `json:"date"`
	Competition string      `json:"competition"`
	HomeTeam    TeamScore   `json:"homeTeam"`
	AwayTeam    TeamScore   `json:"awayTeam"`
	PlayerStats PlayerStats `json:"playerStats"`
	Notable     bool        `json:"notable"`
}

// Rating systems.
const (
	RatingStandard = "standard"
	RatingGerman   = "german"
)

// MediaRating is one outlet's grade for the player.
type MediaRating struct {
	Source            string  `json:"source"`
	Country           string  `json:"country"`
	Rating            float64 `json:"rating"`
	MaxRating         float64 `json:"maxRating"`
	RatingSystem      string  `json:"ratingSystem"`
	Comment           string  `json:"comment,omitempty"`
	CommentTranslated string  `json:"commentTranslated,omitempty"`
}

// Voice role keys.
const (
	RoleSupporter  = "supporter"
	RoleJournalist = "journalist"
	RoleAnalyst    = "analyst"
)

// RoleLabels maps a role key to its display label.
var RoleLabels = map[string]string{
	RoleSupporter:  "サポーター",
	RoleJournalist: "ジャーナリスト",
	RoleAnalyst:    "アナリスト",
}

// LocalVoice is a quote from a supporter, journalist or analyst.
type LocalVoice struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	RoleKey        string `json:"roleKey"`
	LanguageCode   string `json:"languageCode"`
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
}

// ThreadReply is a reply under an XThread.
type ThreadReply struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	LanguageCode   string `json:"languageCode"`
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
	Likes          int    `json:"likes"`
}

// XThread is a generated social post with its replies.
type XThread struct {
	ID             string        `json:"id"`
	Username       string        `json:"username"`
	Verified       bool          `json:"verified"`
	LanguageCode   string        `json:"languageCode"`
	OriginalText   string        `json:"originalText"`
	TranslatedText string        `json:"translatedText"`
	Likes          int           `json:"likes"`
	Retweets       int           `json:"retweets"`
	Replies        []ThreadReply `json:"replies"`
}

// MatchMediaData is the generated companion document of a Match.
type MatchMediaData struct {
	MatchID       string        `json:"matchId"`
	PlayerID      string        `json:"playerId"`
	Ratings       []MediaRating `json:"ratings"`
	AverageRating float64       `json:"averageRating"`
	LocalVoices   []LocalVoice  `json:"localVoices"`
	XThreads      []XThread     `json:"xThreads"`
	LastUpdated   string        `json:"lastUpdated,omitempty"`
}

// HighlightVideo is the highlight clip linked to a match.
type HighlightVideo struct {
	Enabled   bool   `json:"enabled"`
	YoutubeID string `json:"youtubeId"`
	Title     string `json:"title"`
}
